package distribute

import (
	"context"

	"github.com/agrilotorg/libagrilot-go/account"
	"github.com/agrilotorg/libagrilot-go/ledger"
)

// Holder is one (account, balance) pair in a distribution snapshot.
type Holder struct {
	Account account.ID
	Balance uint64
}

// Receipt records one issued payout.
type Receipt struct {
	Account account.ID
	Amount  uint64
}

// SnapshotBalances builds a holder snapshot by reading each account's
// balance from the ledger, in the order given. Completeness is the
// caller's responsibility: accounts left out of the list simply do not
// share in the distribution.
func SnapshotBalances(ctx context.Context, l ledger.Ledger, accounts []account.ID) ([]Holder, error) {
	holders := make([]Holder, len(accounts))
	for i, acct := range accounts {
		balance, err := l.BalanceOf(ctx, acct)
		if err != nil {
			return nil, err
		}
		holders[i] = Holder{Account: acct, Balance: balance}
	}
	return holders, nil
}
