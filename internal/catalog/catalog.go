// Package catalog provides the static reference data for the front office:
// the doctor roster and the medication formulary. Both catalogs are fixed at
// process start and never mutated at runtime.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Doctor is a roster entry. Availability is the ordered list of bookable
// time slots ("09:00", "10:00", ...).
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Availability []string `json:"availability"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
}

// Medication is a formulary entry. Stock is carried for display but no
// operation decrements it; dispensing does not touch inventory.
type Medication struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// Provider exposes the two read-only catalogs. Lookups are linear scans;
// both catalogs are a handful of entries.
type Provider struct {
	doctors     []Doctor
	medications []Medication
}

// NewProvider builds a provider over the given catalogs.
func NewProvider(doctors []Doctor, medications []Medication) *Provider {
	return &Provider{doctors: doctors, medications: medications}
}

// Default returns a provider seeded with the built-in reference fixture.
func Default() *Provider {
	return NewProvider(defaultDoctors, defaultMedications)
}

// catalogFile is the on-disk shape accepted by LoadFile.
type catalogFile struct {
	Doctors     []Doctor     `json:"doctors"`
	Medications []Medication `json:"medications"`
}

// LoadFile reads a catalog JSON file. Either list may be omitted, in which
// case the built-in fixture for that list is used.
func LoadFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if f.Doctors == nil {
		f.Doctors = defaultDoctors
	}
	if f.Medications == nil {
		f.Medications = defaultMedications
	}
	return NewProvider(f.Doctors, f.Medications), nil
}

// Doctors returns the roster in catalog order. The slice is a copy.
func (p *Provider) Doctors() []Doctor {
	out := make([]Doctor, len(p.doctors))
	copy(out, p.doctors)
	return out
}

// Medications returns the formulary in catalog order. The slice is a copy.
func (p *Provider) Medications() []Medication {
	out := make([]Medication, len(p.medications))
	copy(out, p.medications)
	return out
}

// DoctorByID looks up a doctor by id.
func (p *Provider) DoctorByID(id string) (Doctor, bool) {
	for _, d := range p.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// MedicationByID looks up a medication by id.
func (p *Provider) MedicationByID(id string) (Medication, bool) {
	for _, m := range p.medications {
		if m.ID == id {
			return m, true
		}
	}
	return Medication{}, false
}
