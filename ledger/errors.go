package ledger

import "errors"

var (
	// ErrInsufficientFunds indicates the source balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")

	// ErrAccountFrozen indicates the account rejects transfers.
	ErrAccountFrozen = errors.New("ledger: account frozen")

	// ErrUnknownAccount indicates the account does not exist on the ledger.
	ErrUnknownAccount = errors.New("ledger: unknown account")

	// ErrUnknownMint indicates the mint does not exist on the ledger.
	ErrUnknownMint = errors.New("ledger: unknown mint")

	// ErrInvalidAccount indicates an account identity is malformed (zero).
	ErrInvalidAccount = errors.New("ledger: invalid account")
)
