package store

import (
	"sync"
	"time"
)

// Event actions.
const (
	ActionAppend = "append"
	ActionStatus = "status"
)

// Event describes a single store mutation. Views and audit sinks subscribe
// to these to refresh after each change.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Listener receives store events. Listeners run synchronously on the
// mutating goroutine, after the mutation has completed and the collection
// lock has been released; they must not block.
type Listener func(Event)

// Notifier fans store events out to registered listeners.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewNotifier creates a Notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a listener for all subsequent events.
func (n *Notifier) Subscribe(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// Publish delivers evt to every listener in subscription order. A zero
// timestamp is stamped with the current time.
func (n *Notifier) Publish(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	n.mu.RLock()
	listeners := make([]Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.RUnlock()

	for _, l := range listeners {
		l(evt)
	}
}
