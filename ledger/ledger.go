// Package ledger defines the boundary to the external token ledger.
//
// The ledger owns every balance and the total supply of each mint. This
// library never mutates them directly; it only issues transfer requests
// and reads. Each call is atomic on the ledger side and fails closed:
// a rejected transfer moves nothing.
package ledger

import (
	"context"

	"github.com/agrilotorg/libagrilot-go/account"
)

// Ledger is the external token service.
type Ledger interface {
	// Transfer moves amount from one account to another. A zero amount
	// is a valid no-op transfer and must succeed against valid accounts.
	Transfer(ctx context.Context, from, to account.ID, amount uint64) error

	// BalanceOf returns the current balance of an account.
	BalanceOf(ctx context.Context, acct account.ID) (uint64, error)

	// TotalSupply returns the total issued supply of a mint.
	TotalSupply(ctx context.Context, mint account.ID) (uint64, error)
}
