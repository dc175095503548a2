package event_bus

import (
	"sync"
	"testing"

	"reader/domain"
	"reader/port/event_bus_port"
)

func TestInMemoryBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus()

	var first, second int
	bus.Subscribe(domain.EventBookmarksChanged, func() { first++ })
	bus.Subscribe(domain.EventBookmarksChanged, func() { second++ })

	bus.Publish(domain.EventBookmarksChanged)
	bus.Publish(domain.EventBookmarksChanged)

	if first != 2 || second != 2 {
		t.Errorf("handlers called (%d, %d) times, want (2, 2)", first, second)
	}
}

func TestInMemoryBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryBus()

	var calls int
	id := bus.Subscribe(domain.EventBookmarksChanged, func() { calls++ })

	bus.Publish(domain.EventBookmarksChanged)
	bus.Unsubscribe(id)
	bus.Publish(domain.EventBookmarksChanged)

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}

	// Unknown handles are ignored.
	bus.Unsubscribe(9999)
}

func TestInMemoryBus_KindsAreIndependent(t *testing.T) {
	bus := NewInMemoryBus()

	var calls int
	bus.Subscribe(domain.EventKind("other.topic"), func() { calls++ })

	bus.Publish(domain.EventBookmarksChanged)

	if calls != 0 {
		t.Errorf("handler for a different kind called %d times, want 0", calls)
	}
}

func TestInMemoryBus_HandlerMayUnsubscribeDuringPublish(t *testing.T) {
	bus := NewInMemoryBus()

	var id event_bus_port.SubscriptionID
	id = bus.Subscribe(domain.EventBookmarksChanged, func() {
		// Reentrancy: mutating the registry mid-publish must not deadlock.
		bus.Unsubscribe(id)
	})

	bus.Publish(domain.EventBookmarksChanged)
	bus.Publish(domain.EventBookmarksChanged)
}

func TestInMemoryBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewInMemoryBus()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			id := bus.Subscribe(domain.EventBookmarksChanged, func() {})
			bus.Unsubscribe(id)
		}()
		go func() {
			defer wg.Done()
			bus.Publish(domain.EventBookmarksChanged)
		}()
	}
	wg.Wait()
}
