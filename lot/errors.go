package lot

import "errors"

var (
	// ErrInsufficientYield indicates a yield estimate of zero.
	ErrInsufficientYield = errors.New("lot: insufficient yield estimate")

	// ErrInvalidHarvestTime indicates a harvest time not strictly in the future.
	ErrInvalidHarvestTime = errors.New("lot: harvest time must be in the future")

	// ErrNameTooLong indicates the lot name exceeds MaxNameBytes encoded bytes.
	ErrNameTooLong = errors.New("lot: name too long")

	// ErrMissingOwner indicates a zero owner identity.
	ErrMissingOwner = errors.New("lot: missing owner")

	// ErrMissingMint indicates a zero token mint identity.
	ErrMissingMint = errors.New("lot: missing token mint")

	// ErrLotExists indicates a lot already occupies the owner's derived address.
	ErrLotExists = errors.New("lot: already initialized for owner")

	// ErrLotNotFound indicates no lot exists at the derived address.
	ErrLotNotFound = errors.New("lot: not found")

	// ErrInvalidRecord indicates a stored lot record is malformed.
	ErrInvalidRecord = errors.New("lot: invalid record data")
)
