package catalog

// Built-in reference fixture: four doctors and five medications. Used when
// no catalog file is configured.
var defaultDoctors = []Doctor{
	{
		ID:           "1",
		Name:         "Dr. Sarah Johnson",
		Specialty:    "Cardiology",
		Availability: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
		Phone:        "+1 (555) 123-4567",
		Email:        "sarah.johnson@hospital.com",
	},
	{
		ID:           "2",
		Name:         "Dr. Michael Chen",
		Specialty:    "Neurology",
		Availability: []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
		Phone:        "+1 (555) 234-5678",
		Email:        "michael.chen@hospital.com",
	},
	{
		ID:           "3",
		Name:         "Dr. Emily Rodriguez",
		Specialty:    "Pediatrics",
		Availability: []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00"},
		Phone:        "+1 (555) 345-6789",
		Email:        "emily.rodriguez@hospital.com",
	},
	{
		ID:           "4",
		Name:         "Dr. David Wilson",
		Specialty:    "Orthopedics",
		Availability: []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00"},
		Phone:        "+1 (555) 456-7890",
		Email:        "david.wilson@hospital.com",
	},
}

var defaultMedications = []Medication{
	{
		ID:          "1",
		Name:        "Aspirin",
		Price:       12.99,
		Stock:       500,
		Description: "Pain reliever and anti-inflammatory",
		Category:    "Pain Relief",
	},
	{
		ID:          "2",
		Name:        "Amoxicillin",
		Price:       25.50,
		Stock:       250,
		Description: "Antibiotic for bacterial infections",
		Category:    "Antibiotics",
	},
	{
		ID:          "3",
		Name:        "Lisinopril",
		Price:       18.75,
		Stock:       300,
		Description: "ACE inhibitor for high blood pressure",
		Category:    "Cardiovascular",
	},
	{
		ID:          "4",
		Name:        "Metformin",
		Price:       22.00,
		Stock:       400,
		Description: "Diabetes medication",
		Category:    "Diabetes",
	},
	{
		ID:          "5",
		Name:        "Ibuprofen",
		Price:       15.99,
		Stock:       600,
		Description: "Non-steroidal anti-inflammatory drug",
		Category:    "Pain Relief",
	},
}
