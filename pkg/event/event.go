// Package event provides a small in-process event bus.
//
// Listeners register with Subscribe and receive payloads for a topic until the
// returned unsubscribe function is called. Publish never blocks on listeners
// and never reports their failures back to the publisher: write paths that
// emit events must not fail because a notification could not be delivered.
package event

import "sync"

// Handler receives an event payload.
type Handler func(payload interface{})

// Bus dispatches published payloads to topic subscribers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: map[string]map[int]Handler{}}
}

// Subscribe registers a handler for topic and returns its unsubscribe function.
// Unsubscribing is idempotent.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = map[int]Handler{}
	}
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers payload to every subscriber of topic, each in its own
// goroutine. Returns immediately.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// PublishSync delivers payload to every subscriber on the calling goroutine.
// Used by tests and by consumers that need ordering.
func (b *Bus) PublishSync(topic string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		hs = append(hs, h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}
