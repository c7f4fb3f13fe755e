package billing

import (
	"github.com/carefront/carefront/internal/store"
)

// MemoryRepository holds bills in an ordered in-memory collection.
type MemoryRepository struct {
	bills *store.Collection[Bill]
}

func NewMemoryRepository(n *store.Notifier) *MemoryRepository {
	return &MemoryRepository{
		bills: store.NewCollection(store.Config[Bill]{
			Name:        store.CollectionBills,
			ID:          func(b Bill) string { return b.ID },
			Status:      func(b Bill) string { return b.Status },
			SetStatus:   func(b *Bill, s string) { b.Status = s },
			Transitions: Transitions,
			Notifier:    n,
		}),
	}
}

func (r *MemoryRepository) Append(b Bill) {
	r.bills.Append(b)
}

func (r *MemoryRepository) List() []Bill {
	return r.bills.Snapshot()
}

func (r *MemoryRepository) Get(id string) (Bill, bool) {
	return r.bills.Get(id)
}

func (r *MemoryRepository) UpdateStatus(id, status string) {
	r.bills.UpdateStatus(id, status)
}

func (r *MemoryRepository) UpdateStatusStrict(id, status string) error {
	return r.bills.UpdateStatusStrict(id, status)
}
