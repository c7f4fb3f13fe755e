package billing

import (
	"time"

	"github.com/carefront/carefront/internal/store"
)

const dateLayout = "2006-01-02"

// Service handles bill creation and payment.
type Service struct {
	repo   Repository
	ids    store.IDGenerator
	strict bool
	now    func() time.Time
}

func NewService(repo Repository, ids store.IDGenerator, strict bool) *Service {
	return &Service{repo: repo, ids: ids, strict: strict, now: time.Now}
}

// Create assigns an id, stamps the issue date, derives the total and the
// due date, and appends with status pending. Creation never fails.
func (s *Service) Create(b Bill) Bill {
	issued := s.now()
	b.ID = s.ids.NewID()
	b.Date = issued.Format(dateLayout)
	b.DueDate = DueDate(issued).Format(dateLayout)
	b.Total = Total(b.Items)
	b.Status = StatusPending
	s.repo.Append(b)
	return b
}

// Pay marks the bill paid. Permissive mode silently ignores unknown ids
// and already-paid bills; strict mode reports them.
func (s *Service) Pay(id string) error {
	if s.strict {
		return s.repo.UpdateStatusStrict(id, StatusPaid)
	}
	s.repo.UpdateStatus(id, StatusPaid)
	return nil
}

// List returns bills in creation order, optionally filtered by patient id.
func (s *Service) List(patientID string) []Bill {
	all := s.repo.List()
	if patientID == "" {
		return all
	}
	filtered := make([]Bill, 0, len(all))
	for _, b := range all {
		if b.PatientID == patientID {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Get returns the bill with the given id.
func (s *Service) Get(id string) (Bill, bool) {
	return s.repo.Get(id)
}
