// Package account defines the opaque 32-byte identity used for owners,
// token mints, holder accounts and derived lot addresses.
package account

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// IDSize is the length of an account identity in bytes.
const IDSize = 32

// ID identifies an account. Identities are opaque to this library;
// the external ledger owns the accounts they name.
type ID [IDSize]byte

// Zero is the all-zero identity. It is never a valid signer.
var Zero ID

// FromPublicKey derives an identity from a compressed public key:
// ID = SHA256(compressed pubkey bytes).
func FromPublicKey(pub *ec.PublicKey) ID {
	var id ID
	copy(id[:], bsvhash.Sha256(pub.Compressed()))
	return id
}

// FromBytes copies a 32-byte slice into an ID.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != IDSize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidID, IDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// FromString parses a hex-encoded identity.
func FromString(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return FromBytes(b)
}

// String returns the hex encoding of the identity.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether the identity is the all-zero value.
func (id ID) IsZero() bool {
	return id == Zero
}
