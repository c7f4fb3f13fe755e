package pharmacy

import (
	"github.com/carefront/carefront/internal/store"
)

// MemoryRepository holds prescriptions in an ordered in-memory collection.
type MemoryRepository struct {
	prescriptions *store.Collection[Prescription]
}

func NewMemoryRepository(n *store.Notifier) *MemoryRepository {
	return &MemoryRepository{
		prescriptions: store.NewCollection(store.Config[Prescription]{
			Name:        store.CollectionPrescriptions,
			ID:          func(p Prescription) string { return p.ID },
			Status:      func(p Prescription) string { return p.Status },
			SetStatus:   func(p *Prescription, s string) { p.Status = s },
			Transitions: Transitions,
			Notifier:    n,
		}),
	}
}

func (r *MemoryRepository) Append(p Prescription) {
	r.prescriptions.Append(p)
}

func (r *MemoryRepository) List() []Prescription {
	return r.prescriptions.Snapshot()
}

func (r *MemoryRepository) Get(id string) (Prescription, bool) {
	return r.prescriptions.Get(id)
}

func (r *MemoryRepository) UpdateStatus(id, status string) {
	r.prescriptions.UpdateStatus(id, status)
}

func (r *MemoryRepository) UpdateStatusStrict(id, status string) error {
	return r.prescriptions.UpdateStatusStrict(id, status)
}
