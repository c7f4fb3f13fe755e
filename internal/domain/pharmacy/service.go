package pharmacy

import (
	"time"

	"github.com/carefront/carefront/internal/catalog"
	"github.com/carefront/carefront/internal/store"
)

const dateLayout = "2006-01-02"

// Service handles prescription creation and the two terminal transitions.
type Service struct {
	repo      Repository
	formulary *catalog.Provider
	ids       store.IDGenerator
	strict    bool
	now       func() time.Time
}

func NewService(repo Repository, formulary *catalog.Provider, ids store.IDGenerator, strict bool) *Service {
	return &Service{repo: repo, formulary: formulary, ids: ids, strict: strict, now: time.Now}
}

// Create assigns an id and today's date, derives the total from the
// formulary and appends with status pending. Unresolvable medication
// references and odd quantities pass through; creation never fails.
func (s *Service) Create(p Prescription) Prescription {
	p.ID = s.ids.NewID()
	p.Date = s.now().Format(dateLayout)
	p.Total = Total(p.Medications, s.formulary)
	p.Status = StatusPending
	s.repo.Append(p)
	return p
}

// Dispense marks the prescription dispensed. Stock is deliberately not
// decremented; the formulary is display-only reference data.
func (s *Service) Dispense(id string) error {
	return s.update(id, StatusDispensed)
}

// MarkPaid marks a pending prescription paid. A dispensed prescription
// cannot be marked paid.
func (s *Service) MarkPaid(id string) error {
	return s.update(id, StatusPaid)
}

func (s *Service) update(id, status string) error {
	if s.strict {
		return s.repo.UpdateStatusStrict(id, status)
	}
	s.repo.UpdateStatus(id, status)
	return nil
}

// List returns prescriptions in creation order, optionally filtered by
// patient id.
func (s *Service) List(patientID string) []Prescription {
	all := s.repo.List()
	if patientID == "" {
		return all
	}
	filtered := make([]Prescription, 0, len(all))
	for _, p := range all {
		if p.PatientID == patientID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns the prescription with the given id.
func (s *Service) Get(id string) (Prescription, bool) {
	return s.repo.Get(id)
}

// Medications returns the formulary.
func (s *Service) Medications() []catalog.Medication {
	return s.formulary.Medications()
}

// MedicationByID resolves a formulary entry.
func (s *Service) MedicationByID(id string) (catalog.Medication, bool) {
	return s.formulary.MedicationByID(id)
}
