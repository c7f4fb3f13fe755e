package scheduling

import (
	"encoding/json"
	"testing"
)

func TestAppointmentJSONShape(t *testing.T) {
	a := Appointment{
		ID:        "apt-1",
		PatientID: "p1",
		DoctorID:  "1",
		Date:      "2024-02-01",
		Time:      "10:00",
		Reason:    "checkup",
		Notes:     "", // optional fields serialize as empty strings, not omitted
		Status:    StatusScheduled,
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"id", "patientId", "doctorId", "date", "time", "reason", "notes", "status"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	if m["notes"] != "" {
		t.Errorf("expected empty notes to serialize as empty string, got %v", m["notes"])
	}

	var back Appointment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v", err)
	}
	if back != a {
		t.Errorf("round-trip mismatch:\nin  %+v\nout %+v", a, back)
	}
}
