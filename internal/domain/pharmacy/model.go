package pharmacy

// Prescription statuses. Dispensed and paid are both terminal; there is no
// dispensed -> paid path.
const (
	StatusPending   = "pending"
	StatusDispensed = "dispensed"
	StatusPaid      = "paid"
)

// Transitions is the legal status transition table for prescriptions.
var Transitions = map[string][]string{
	StatusPending: {StatusDispensed, StatusPaid},
}

// Line is one prescribed medication. Quantity is expected to be >= 1 but is
// not validated; whatever arrives participates in the total arithmetic
// as-is. MedicationID is a soft reference into the formulary.
type Line struct {
	MedicationID string  `json:"medicationId"`
	Quantity     float64 `json:"quantity"`
	Dosage       string  `json:"dosage"`
	Duration     string  `json:"duration"`
}

// Prescription is an order of one or more medication lines for a patient.
// Total is derived once, at creation time, from the formulary prices; it is
// not recomputed if the formulary changes.
type Prescription struct {
	ID          string  `json:"id"`
	PatientID   string  `json:"patientId"`
	DoctorID    string  `json:"doctorId"`
	Medications []Line  `json:"medications"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}
