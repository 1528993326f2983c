package ledger

import (
	"context"

	"github.com/agrilotorg/libagrilot-go/account"
)

// Mock is a test double for Ledger.
// All function fields must be set before the corresponding method is called.
type Mock struct {
	TransferFn    func(ctx context.Context, from, to account.ID, amount uint64) error
	BalanceOfFn   func(ctx context.Context, acct account.ID) (uint64, error)
	TotalSupplyFn func(ctx context.Context, mint account.ID) (uint64, error)
}

func (m *Mock) Transfer(ctx context.Context, from, to account.ID, amount uint64) error {
	return m.TransferFn(ctx, from, to, amount)
}

func (m *Mock) BalanceOf(ctx context.Context, acct account.ID) (uint64, error) {
	return m.BalanceOfFn(ctx, acct)
}

func (m *Mock) TotalSupply(ctx context.Context, mint account.ID) (uint64, error) {
	return m.TotalSupplyFn(ctx, mint)
}
