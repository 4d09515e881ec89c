// Package messagingtest provides an in-memory publisher for tests.
package messagingtest

import (
	"context"
	"sync"

	"tourism-backend/messaging"
)

// Recorder keeps published events in memory so tests can assert on what a
// service emitted.
type Recorder struct {
	mu     sync.Mutex
	events []messaging.Event
}

var _ messaging.Publisher = (*Recorder)(nil)

func (r *Recorder) Publish(_ context.Context, eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, messaging.NewEvent(eventType, payload))
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []messaging.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]messaging.Event, len(r.events))
	copy(out, r.events)
	return out
}
