// Package notify emits structured notifications for external observers.
// It carries no business logic; the core never reads events back.
package notify

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Notifier receives events at the tail of registry and distribution
// operations.
type Notifier interface {
	Emit(ctx context.Context, event Event)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Emit(ctx context.Context, event Event) {}

// Log writes each event as a structured log entry.
type Log struct{}

func (Log) Emit(ctx context.Context, event Event) {
	switch e := event.(type) {
	case LotInitialized:
		log.WithFields(log.Fields{
			"eventType":     e.Type(),
			"name":          e.Name,
			"owner":         e.Owner,
			"yieldEstimate": e.YieldEstimate,
			"harvestTime":   e.HarvestTime,
		}).Info("Lot initialized")
	case RevenueDistributed:
		log.WithFields(log.Fields{
			"eventType":    e.Type(),
			"lot":          e.Lot,
			"totalRevenue": e.TotalRevenue,
			"timestamp":    e.Timestamp,
		}).Info("Revenue distributed")
	default:
		log.WithField("eventType", event.Type()).Info("Event emitted")
	}
}

// Handler is a function that handles events.
type Handler func(ctx context.Context, event Event)

// Bus fans events out to subscribed handlers. Dispatch is synchronous:
// the core has no internal concurrency, and handlers run before the
// emitting operation returns.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Subscribe adds a handler for a specific event type.
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches an event to all handlers registered for its type.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}
}
