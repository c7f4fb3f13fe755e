package registration

import (
	"github.com/carefront/carefront/internal/store"
)

// MemoryRepository holds patients in an ordered in-memory collection.
type MemoryRepository struct {
	patients *store.Collection[Patient]
}

// NewMemoryRepository creates an empty patient collection. Patients carry
// no status field, so the collection has no transition table.
func NewMemoryRepository(n *store.Notifier) *MemoryRepository {
	return &MemoryRepository{
		patients: store.NewCollection(store.Config[Patient]{
			Name:     store.CollectionPatients,
			ID:       func(p Patient) string { return p.ID },
			Notifier: n,
		}),
	}
}

func (r *MemoryRepository) Append(p Patient) {
	r.patients.Append(p)
}

func (r *MemoryRepository) List() []Patient {
	return r.patients.Snapshot()
}

func (r *MemoryRepository) Get(id string) (Patient, bool) {
	return r.patients.Get(id)
}
