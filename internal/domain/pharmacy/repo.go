package pharmacy

// Repository is the prescription collection: append plus status updates,
// nothing else.
type Repository interface {
	Append(p Prescription)
	List() []Prescription
	Get(id string) (Prescription, bool)
	UpdateStatus(id, status string)
	UpdateStatusStrict(id, status string) error
}
