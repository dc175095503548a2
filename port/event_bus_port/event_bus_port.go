package event_bus_port

import (
	"reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=event_bus_port.go -destination=../../mocks/mock_event_bus_port.go -package=mocks

// SubscriptionID identifies one subscription for later removal.
type SubscriptionID uint64

// EventBusPort is the process-wide change notification bus: fire-and-forget
// broadcast of an event kind with no payload. Delivery order across
// subscribers is unspecified and handlers must be safe to re-enter, so
// subscribers normally just enqueue work onto their own context.
type EventBusPort interface {
	Subscribe(kind domain.EventKind, handler func()) SubscriptionID
	Unsubscribe(id SubscriptionID)
	Publish(kind domain.EventKind)
}
