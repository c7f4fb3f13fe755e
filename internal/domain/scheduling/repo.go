package scheduling

// Repository is the appointment collection: append plus status updates,
// nothing else.
type Repository interface {
	Append(a Appointment)
	List() []Appointment
	Get(id string) (Appointment, bool)
	UpdateStatus(id, status string)
	UpdateStatusStrict(id, status string) error
}
