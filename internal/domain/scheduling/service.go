package scheduling

import (
	"github.com/carefront/carefront/internal/catalog"
	"github.com/carefront/carefront/internal/store"
)

// Service handles appointment booking and the two terminal transitions.
type Service struct {
	repo   Repository
	roster *catalog.Provider
	ids    store.IDGenerator
	strict bool
}

func NewService(repo Repository, roster *catalog.Provider, ids store.IDGenerator, strict bool) *Service {
	return &Service{repo: repo, roster: roster, ids: ids, strict: strict}
}

// Book assigns an id, forces the status to scheduled and appends. The
// patient and doctor references are not checked for existence; booking
// never fails.
func (s *Service) Book(a Appointment) Appointment {
	a.ID = s.ids.NewID()
	a.Status = StatusScheduled
	s.repo.Append(a)
	return a
}

// Complete marks the appointment completed. Permissive mode silently
// ignores unknown ids and illegal transitions; strict mode reports them.
func (s *Service) Complete(id string) error {
	return s.update(id, StatusCompleted)
}

// Cancel marks the appointment cancelled, with the same mode behavior as
// Complete.
func (s *Service) Cancel(id string) error {
	return s.update(id, StatusCancelled)
}

func (s *Service) update(id, status string) error {
	if s.strict {
		return s.repo.UpdateStatusStrict(id, status)
	}
	s.repo.UpdateStatus(id, status)
	return nil
}

// List returns appointments in booking order, optionally filtered by
// patient and/or doctor id. Empty filter values match everything.
func (s *Service) List(patientID, doctorID string) []Appointment {
	all := s.repo.List()
	if patientID == "" && doctorID == "" {
		return all
	}
	filtered := make([]Appointment, 0, len(all))
	for _, a := range all {
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// Get returns the appointment with the given id.
func (s *Service) Get(id string) (Appointment, bool) {
	return s.repo.Get(id)
}

// Doctors returns the bookable roster.
func (s *Service) Doctors() []catalog.Doctor {
	return s.roster.Doctors()
}

// DoctorByID resolves a roster entry.
func (s *Service) DoctorByID(id string) (catalog.Doctor, bool) {
	return s.roster.DoctorByID(id)
}
