// Package lot implements the lot registry: creation and lookup of
// agricultural asset records.
//
// Each owner maps to exactly one lot address via deterministic HKDF
// derivation, so the registry is append-only with no update or delete:
// a second registration by the same owner fails with ErrLotExists.
// Registration moves no funds; it is pure metadata creation.
package lot

import (
	"context"
	"fmt"

	"github.com/agrilotorg/libagrilot-go/account"
	"github.com/agrilotorg/libagrilot-go/notify"
)

// RegisterParams carries the caller-supplied fields of a registration.
type RegisterParams struct {
	Owner         account.ID
	Name          string
	YieldEstimate uint64
	HarvestTime   int64 // unix seconds
	TokenMint     account.ID
}

// Registry creates and reads lot records.
type Registry struct {
	store    Store
	clock    Clock
	notifier notify.Notifier
}

// NewRegistry creates a registry over the given store. A nil clock
// defaults to the system clock; a nil notifier discards events.
func NewRegistry(store Store, clock Clock, notifier notify.Notifier) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Registry{store: store, clock: clock, notifier: notifier}
}

// Register validates params, allocates the lot record at the owner's
// derived address and emits LotInitialized. All validation runs before
// the store is touched, so a rejected registration leaves no state.
func (r *Registry) Register(ctx context.Context, params RegisterParams) (*Lot, error) {
	if params.Owner.IsZero() {
		return nil, ErrMissingOwner
	}
	if params.TokenMint.IsZero() {
		return nil, ErrMissingMint
	}
	if params.YieldEstimate == 0 {
		return nil, ErrInsufficientYield
	}
	if now := r.clock.Now().Unix(); params.HarvestTime <= now {
		return nil, fmt.Errorf("%w: harvest %d, now %d", ErrInvalidHarvestTime, params.HarvestTime, now)
	}
	if len(params.Name) > MaxNameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrNameTooLong, len(params.Name), MaxNameBytes)
	}

	l := &Lot{
		Owner:         params.Owner,
		Name:          params.Name,
		YieldEstimate: params.YieldEstimate,
		HarvestTime:   params.HarvestTime,
		TokenMint:     params.TokenMint,
	}

	record, err := SerializeLot(l)
	if err != nil {
		return nil, err
	}
	if err := r.store.Put(DeriveAddress(l.Owner), record); err != nil {
		return nil, err
	}

	r.notifier.Emit(ctx, notify.LotInitialized{
		Name:          l.Name,
		Owner:         l.Owner,
		YieldEstimate: l.YieldEstimate,
		HarvestTime:   l.HarvestTime,
	})

	return l, nil
}

// Get reads the lot registered by owner, or ErrLotNotFound.
func (r *Registry) Get(ctx context.Context, owner account.ID) (*Lot, error) {
	record, err := r.store.Get(DeriveAddress(owner))
	if err != nil {
		return nil, err
	}
	return DeserializeLot(record)
}
