// Package audit records every store mutation as a structured audit trail.
package audit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carefront/carefront/internal/store"
)

// Entry is one recorded mutation: which collection changed, how, and when.
type Entry struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	RecordID   string    `json:"recordId"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// DefaultCapacity bounds the in-memory trail; older entries are evicted.
const DefaultCapacity = 1000

// Trail keeps the most recent mutations in memory and mirrors each one to
// the structured log. Subscribe it to a store notifier to start recording.
type Trail struct {
	logger   zerolog.Logger
	capacity int

	mu      sync.RWMutex
	entries []Entry
}

func NewTrail(logger zerolog.Logger, capacity int) *Trail {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Trail{logger: logger, capacity: capacity}
}

// Subscribe registers the trail as a listener on the notifier.
func (t *Trail) Subscribe(n *store.Notifier) {
	n.Subscribe(t.record)
}

func (t *Trail) record(ev store.Event) {
	entry := Entry{
		Collection: ev.Collection,
		Action:     ev.Action,
		RecordID:   ev.RecordID,
		Status:     ev.Status,
		Timestamp:  ev.Timestamp,
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[len(t.entries)-t.capacity:]
	}
	t.mu.Unlock()

	t.logger.Info().
		Str("type", "audit").
		Str("collection", entry.Collection).
		Str("action", entry.Action).
		Str("record_id", entry.RecordID).
		Str("status", entry.Status).
		Msg("store_mutation")
}

// Recent returns up to n entries, newest last. n <= 0 returns everything.
func (t *Trail) Recent(n int) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || n > len(t.entries) {
		n = len(t.entries)
	}
	out := make([]Entry, n)
	copy(out, t.entries[len(t.entries)-n:])
	return out
}

// Len returns the number of recorded entries.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Handler exposes the trail over HTTP.
type Handler struct {
	trail *Trail
}

func NewHandler(trail *Trail) *Handler {
	return &Handler{trail: trail}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/audit", h.ListEntries)
}

// Limits on the entries returned per request.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ListEntries returns the most recent audit entries. The limit query
// parameter caps the count; it defaults to DefaultListLimit and is clamped
// to MaxListLimit.
func (h *Handler) ListEntries(c echo.Context) error {
	limit := DefaultListLimit
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		limit = n
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	entries := h.trail.Recent(limit)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  entries,
		"total": h.trail.Len(),
	})
}
