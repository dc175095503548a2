// Package event_bus provides the in-process change notification bus.
package event_bus

import (
	"sync"

	"reader/domain"
	"reader/port/event_bus_port"
)

// InMemoryBus broadcasts events to all live subscribers of a kind. The
// subscriber registry may be mutated concurrently with Publish; Publish
// iterates over a snapshot taken under the lock, so a handler may freely
// subscribe or unsubscribe without deadlocking.
//
// Constructed and injected by the application entry point; there is no
// package-level instance.
type InMemoryBus struct {
	mu       sync.Mutex
	nextID   event_bus_port.SubscriptionID
	handlers map[domain.EventKind]map[event_bus_port.SubscriptionID]func()
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[domain.EventKind]map[event_bus_port.SubscriptionID]func()),
	}
}

// Subscribe registers a handler for the event kind and returns its handle.
func (b *InMemoryBus) Subscribe(kind domain.EventKind, handler func()) event_bus_port.SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[event_bus_port.SubscriptionID]func())
	}
	b.handlers[kind][id] = handler

	return id
}

// Unsubscribe removes the subscription. Unknown handles are ignored.
func (b *InMemoryBus) Unsubscribe(id event_bus_port.SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subs := range b.handlers {
		delete(subs, id)
	}
}

// Publish invokes every handler subscribed to the kind. Handlers run on the
// publisher's goroutine in unspecified order; a fire-and-forget broadcast
// with no payload and no error reporting.
func (b *InMemoryBus) Publish(kind domain.EventKind) {
	b.mu.Lock()
	snapshot := make([]func(), 0, len(b.handlers[kind]))
	for _, handler := range b.handlers[kind] {
		snapshot = append(snapshot, handler)
	}
	b.mu.Unlock()

	for _, handler := range snapshot {
		handler()
	}
}
