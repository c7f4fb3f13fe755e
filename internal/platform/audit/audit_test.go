package audit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carefront/carefront/internal/store"
)

func TestTrail_RecordsNotifierEvents(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	n := store.NewNotifier()
	trail := NewTrail(logger, 10)
	trail.Subscribe(n)

	n.Publish(store.Event{
		Collection: store.CollectionPatients,
		Action:     store.ActionAppend,
		RecordID:   "p1",
	})
	n.Publish(store.Event{
		Collection: store.CollectionBills,
		Action:     store.ActionStatus,
		RecordID:   "b1",
		Status:     "paid",
	})

	entries := trail.Recent(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Collection != store.CollectionPatients || entries[0].Action != store.ActionAppend {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Status != "paid" {
		t.Errorf("expected status paid, got %q", entries[1].Status)
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("expected notifier to stamp the entry timestamp")
	}
}

func TestTrail_EvictsOldestBeyondCapacity(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	trail := NewTrail(logger, 3)

	for i := 0; i < 5; i++ {
		trail.record(store.Event{
			Collection: store.CollectionAppointments,
			Action:     store.ActionAppend,
			RecordID:   string(rune('a' + i)),
			Timestamp:  time.Now(),
		})
	}

	entries := trail.Recent(0)
	if len(entries) != 3 {
		t.Fatalf("expected capacity of 3, got %d", len(entries))
	}
	if entries[0].RecordID != "c" {
		t.Errorf("expected oldest surviving entry c, got %s", entries[0].RecordID)
	}
	if entries[2].RecordID != "e" {
		t.Errorf("expected newest entry e, got %s", entries[2].RecordID)
	}
}

func TestTrail_RecentLimitsCount(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	trail := NewTrail(logger, 10)

	for i := 0; i < 5; i++ {
		trail.record(store.Event{
			Collection: store.CollectionPrescriptions,
			Action:     store.ActionAppend,
			RecordID:   string(rune('a' + i)),
			Timestamp:  time.Now(),
		})
	}

	entries := trail.Recent(2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RecordID != "d" || entries[1].RecordID != "e" {
		t.Errorf("expected the two newest entries, got %+v", entries)
	}
}

func TestHandler_ListEntries(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	trail := NewTrail(logger, 10)
	trail.record(store.Event{
		Collection: store.CollectionPatients,
		Action:     store.ActionAppend,
		RecordID:   "p1",
		Timestamp:  time.Now(),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/audit?limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler(trail)
	if err := h.ListEntries(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data  []Entry `json:"data"`
		Total int     `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Total != 1 || len(body.Data) != 1 {
		t.Fatalf("expected 1 entry, got total=%d len=%d", body.Total, len(body.Data))
	}
	if body.Data[0].RecordID != "p1" {
		t.Errorf("expected record p1, got %s", body.Data[0].RecordID)
	}
}

func TestHandler_ListEntries_ClampsLimit(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	trail := NewTrail(logger, MaxListLimit+10)
	for i := 0; i < MaxListLimit+5; i++ {
		trail.record(store.Event{
			Collection: store.CollectionBills,
			Action:     store.ActionAppend,
			RecordID:   "b",
			Timestamp:  time.Now(),
		})
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/audit?limit=999999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler(trail)
	if err := h.ListEntries(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Data []Entry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(body.Data) != MaxListLimit {
		t.Errorf("expected limit clamped to %d, got %d entries", MaxListLimit, len(body.Data))
	}
}
