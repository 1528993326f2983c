package account

import "errors"

var (
	// ErrInvalidID indicates an identity could not be parsed.
	ErrInvalidID = errors.New("account: invalid identity")
)
