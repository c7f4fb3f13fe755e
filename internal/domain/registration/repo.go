package registration

// Repository is the patient collection. Append-only: patients are never
// updated or deleted once registered.
type Repository interface {
	Append(p Patient)
	List() []Patient
	Get(id string) (Patient, bool)
}
