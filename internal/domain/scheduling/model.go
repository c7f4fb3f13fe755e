package scheduling

// Appointment statuses. Completed and cancelled are terminal.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Transitions is the legal status transition table for appointments.
var Transitions = map[string][]string{
	StatusScheduled: {StatusCompleted, StatusCancelled},
}

// Appointment books a patient with a doctor for a date and time slot.
// PatientID and DoctorID are soft references: they are never validated
// against existence, and a broken reference renders blank rather than
// erroring.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
}
