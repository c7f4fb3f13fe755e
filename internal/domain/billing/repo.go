package billing

// Repository is the bill collection: append plus status updates, nothing
// else.
type Repository interface {
	Append(b Bill)
	List() []Bill
	Get(id string) (Bill, bool)
	UpdateStatus(id, status string)
	UpdateStatusStrict(id, status string) error
}
