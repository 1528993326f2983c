package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrilotorg/libagrilot-go/account"
)

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(EventTypeLotInitialized, func(ctx context.Context, e Event) {
		got = append(got, e)
	})

	var owner account.ID
	owner[0] = 0xAA
	event := LotInitialized{Name: "north field", Owner: owner, YieldEstimate: 500, HarvestTime: 1800000000}
	bus.Emit(context.Background(), event)

	assert.Len(t, got, 1)
	assert.Equal(t, event, got[0])
}

func TestBus_TypeFiltering(t *testing.T) {
	bus := NewBus()

	var lotEvents, revenueEvents int
	bus.Subscribe(EventTypeLotInitialized, func(ctx context.Context, e Event) {
		lotEvents++
	})
	bus.Subscribe(EventTypeRevenueDistributed, func(ctx context.Context, e Event) {
		revenueEvents++
	})

	ctx := context.Background()
	bus.Emit(ctx, LotInitialized{Name: "a"})
	bus.Emit(ctx, RevenueDistributed{TotalRevenue: 100, Timestamp: 1})
	bus.Emit(ctx, RevenueDistributed{TotalRevenue: 200, Timestamp: 2})

	assert.Equal(t, 1, lotEvents)
	assert.Equal(t, 2, revenueEvents)
}

func TestBus_SynchronousDispatchOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(EventTypeRevenueDistributed, func(ctx context.Context, e Event) {
			order = append(order, i)
		})
	}

	bus.Emit(context.Background(), RevenueDistributed{})
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestNop_Emit(t *testing.T) {
	// Must not panic and must accept any event.
	Nop{}.Emit(context.Background(), LotInitialized{})
	Nop{}.Emit(context.Background(), RevenueDistributed{})
}

func TestEventTypes(t *testing.T) {
	assert.Equal(t, EventTypeLotInitialized, LotInitialized{}.Type())
	assert.Equal(t, EventTypeRevenueDistributed, RevenueDistributed{}.Type())
}
