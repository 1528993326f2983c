package distribute

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOwner indicates the caller is not the lot owner.
	ErrInvalidOwner = errors.New("distribute: caller is not the lot owner")

	// ErrInvalidRevenueAmount indicates a revenue amount of zero.
	ErrInvalidRevenueAmount = errors.New("distribute: revenue must be greater than zero")

	// ErrZeroTotalSupply indicates the mint reports a total supply of zero.
	ErrZeroTotalSupply = errors.New("distribute: zero total supply")

	// ErrNoHolders indicates an empty holder snapshot.
	ErrNoHolders = errors.New("distribute: no holders in snapshot")

	// ErrReceiptMismatch indicates receipts do not match the proportional formula.
	ErrReceiptMismatch = errors.New("distribute: receipt mismatch")
)

// PartialDistributionError reports a distribution that paid some but
// not all holders before a ledger transfer failed. There is no
// rollback: the first Paid holders keep their payouts.
type PartialDistributionError struct {
	Paid  int   // holders paid before the failure
	Total int   // holders in the snapshot
	Err   error // underlying ledger error
}

func (e *PartialDistributionError) Error() string {
	return fmt.Sprintf("distribute: incomplete distribution, paid %d of %d holders: %v", e.Paid, e.Total, e.Err)
}

func (e *PartialDistributionError) Unwrap() error { return e.Err }
