package pharmacy

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPrescriptionJSONShape(t *testing.T) {
	p := Prescription{
		ID:        "rx-1",
		PatientID: "p1",
		DoctorID:  "1",
		Medications: []Line{
			{MedicationID: "1", Quantity: 2, Dosage: "100mg", Duration: "7 days"},
			{MedicationID: "2", Quantity: 1, Dosage: "", Duration: ""}, // empty optionals kept
		},
		Date:   "2024-01-15",
		Total:  25.98,
		Status: StatusPending,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"id", "patientId", "doctorId", "medications", "date", "total", "status"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	lines, ok := m["medications"].([]interface{})
	if !ok || len(lines) != 2 {
		t.Fatalf("expected 2 medication lines, got %v", m["medications"])
	}
	second, ok := lines[1].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected line shape: %v", lines[1])
	}
	for _, key := range []string{"medicationId", "quantity", "dosage", "duration"} {
		if _, ok := second[key]; !ok {
			t.Errorf("expected line key %q in JSON output", key)
		}
	}
	if second["dosage"] != "" {
		t.Errorf("expected empty dosage to serialize as empty string, got %v", second["dosage"])
	}

	var back Prescription
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back, p) {
		t.Errorf("round-trip mismatch:\nin  %+v\nout %+v", p, back)
	}
}
