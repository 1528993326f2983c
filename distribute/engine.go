// Package distribute implements proportional revenue distribution to
// the holders of a lot's token.
//
// A distribution turns one revenue amount, one total-supply reading and
// an ordered holder snapshot into per-holder ledger transfers. The
// supply is read once per call and treated as constant for the whole
// run. Transfers are issued in snapshot order with no rollback: a
// failed transfer aborts the call and the holders already paid keep
// their payouts, surfaced as a PartialDistributionError.
package distribute

import (
	"context"
	"fmt"

	"github.com/agrilotorg/libagrilot-go/account"
	"github.com/agrilotorg/libagrilot-go/ledger"
	"github.com/agrilotorg/libagrilot-go/lot"
	"github.com/agrilotorg/libagrilot-go/notify"
)

// Engine executes distributions against an external ledger.
type Engine struct {
	ledger   ledger.Ledger
	clock    lot.Clock
	notifier notify.Notifier
}

// NewEngine creates an engine. A nil clock defaults to the system
// clock; a nil notifier discards events.
func NewEngine(l ledger.Ledger, clock lot.Clock, notifier notify.Notifier) *Engine {
	if clock == nil {
		clock = lot.SystemClock{}
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Engine{ledger: l, clock: clock, notifier: notifier}
}

// Distribute pays each holder in the snapshot its proportional share of
// totalRevenue out of source, and emits RevenueDistributed once every
// transfer has gone through.
//
// Authorization and revenue validation run before any ledger call, so
// a rejected distribution issues zero transfers. Zero-share holders
// still receive a zero-amount transfer rather than being skipped. The
// snapshot's completeness and ordering are the caller's responsibility.
//
// Note: harvest time is not checked here. A lot's revenue may be
// distributed before its recorded harvest time.
func (e *Engine) Distribute(ctx context.Context, l *lot.Lot, caller account.ID, totalRevenue uint64, holders []Holder, source account.ID) ([]Receipt, error) {
	if caller != l.Owner {
		return nil, ErrInvalidOwner
	}
	if totalRevenue == 0 {
		return nil, ErrInvalidRevenueAmount
	}

	// One supply reading shared across every holder in this call.
	totalSupply, err := e.ledger.TotalSupply(ctx, l.TokenMint)
	if err != nil {
		return nil, fmt.Errorf("distribute: read total supply: %w", err)
	}

	receipts, err := ComputeShares(totalRevenue, holders, totalSupply)
	if err != nil {
		return nil, err
	}

	for i, r := range receipts {
		if err := e.ledger.Transfer(ctx, source, r.Account, r.Amount); err != nil {
			return receipts[:i], &PartialDistributionError{Paid: i, Total: len(receipts), Err: err}
		}
	}

	e.notifier.Emit(ctx, notify.RevenueDistributed{
		Lot:          l.Address(),
		TotalRevenue: totalRevenue,
		Timestamp:    e.clock.Now().Unix(),
	})

	return receipts, nil
}
