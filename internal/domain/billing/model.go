package billing

// Bill statuses. Overdue is part of the status set but no operation
// produces it; only pending -> paid is ever triggered.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Transitions is the legal status transition table for bills.
var Transitions = map[string][]string{
	StatusPending: {StatusPaid},
}

// Item is one billed line. Amount is not validated as non-negative.
type Item struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Bill invoices a patient for a list of items. Total and DueDate are
// derived at creation: Total is the item sum, DueDate is the issue date
// plus 30 calendar days. Dates are YYYY-MM-DD strings.
type Bill struct {
	ID        string  `json:"id"`
	PatientID string  `json:"patientId"`
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
	DueDate   string  `json:"dueDate"`
}
