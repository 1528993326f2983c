package notify

import "github.com/agrilotorg/libagrilot-go/account"

// EventType names a kind of notification.
type EventType string

const (
	EventTypeLotInitialized     EventType = "lot_initialized"
	EventTypeRevenueDistributed EventType = "revenue_distributed"
)

// Event is the base interface for all notifications.
type Event interface {
	Type() EventType
}

// LotInitialized is emitted when a lot record is created.
type LotInitialized struct {
	Name          string
	Owner         account.ID
	YieldEstimate uint64
	HarvestTime   int64
}

func (e LotInitialized) Type() EventType {
	return EventTypeLotInitialized
}

// RevenueDistributed is emitted once after a distribution pays every
// holder in the snapshot.
type RevenueDistributed struct {
	Lot          account.ID
	TotalRevenue uint64
	Timestamp    int64
}

func (e RevenueDistributed) Type() EventType {
	return EventTypeRevenueDistributed
}
