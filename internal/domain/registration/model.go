package registration

// Gender values accepted on intake.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient is an intake record. All dates are YYYY-MM-DD strings, the
// interchange format used throughout the front office. A patient record is
// immutable after creation; no update or delete operation exists.
type Patient struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	MedicalHistory   string `json:"medicalHistory"`
	Allergies        string `json:"allergies"`
	BloodType        string `json:"bloodType"`
	InsuranceNumber  string `json:"insuranceNumber"`
	RegistrationDate string `json:"registrationDate"`
}
