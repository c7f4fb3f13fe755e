package registration

import (
	"fmt"
	"time"

	"github.com/carefront/carefront/internal/store"
)

const dateLayout = "2006-01-02"

// Service handles patient intake.
type Service struct {
	repo   Repository
	ids    store.IDGenerator
	strict bool
	now    func() time.Time
}

func NewService(repo Repository, ids store.IDGenerator, strict bool) *Service {
	return &Service{repo: repo, ids: ids, strict: strict, now: time.Now}
}

// Register assigns the patient an id and today's registration date and
// appends the record. In permissive mode registration never fails; strict
// mode additionally validates the gender value.
func (s *Service) Register(p Patient) (Patient, error) {
	if s.strict {
		switch p.Gender {
		case GenderMale, GenderFemale, GenderOther:
		default:
			return Patient{}, fmt.Errorf("invalid gender: %q", p.Gender)
		}
	}
	p.ID = s.ids.NewID()
	p.RegistrationDate = s.now().Format(dateLayout)
	s.repo.Append(p)
	return p, nil
}

// List returns all patients in registration order.
func (s *Service) List() []Patient {
	return s.repo.List()
}

// Get returns the patient with the given id.
func (s *Service) Get(id string) (Patient, bool) {
	return s.repo.Get(id)
}
