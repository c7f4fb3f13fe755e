package scheduling

import (
	"github.com/carefront/carefront/internal/store"
)

// MemoryRepository holds appointments in an ordered in-memory collection.
type MemoryRepository struct {
	appointments *store.Collection[Appointment]
}

func NewMemoryRepository(n *store.Notifier) *MemoryRepository {
	return &MemoryRepository{
		appointments: store.NewCollection(store.Config[Appointment]{
			Name:        store.CollectionAppointments,
			ID:          func(a Appointment) string { return a.ID },
			Status:      func(a Appointment) string { return a.Status },
			SetStatus:   func(a *Appointment, s string) { a.Status = s },
			Transitions: Transitions,
			Notifier:    n,
		}),
	}
}

func (r *MemoryRepository) Append(a Appointment) {
	r.appointments.Append(a)
}

func (r *MemoryRepository) List() []Appointment {
	return r.appointments.Snapshot()
}

func (r *MemoryRepository) Get(id string) (Appointment, bool) {
	return r.appointments.Get(id)
}

func (r *MemoryRepository) UpdateStatus(id, status string) {
	r.appointments.UpdateStatus(id, status)
}

func (r *MemoryRepository) UpdateStatusStrict(id, status string) error {
	return r.appointments.UpdateStatusStrict(id, status)
}
