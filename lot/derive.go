package lot

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/agrilotorg/libagrilot-go/account"
)

const (
	// addressNamespace is the fixed namespace tag mixed into every lot
	// address. It keeps lot addresses disjoint from any other address
	// space derived from the same owner identity.
	addressNamespace = "lot"

	// addressInfo is the constant info string for HKDF-SHA256 derivation.
	addressInfo = "agrilot-lot-address"
)

// DeriveAddress computes the deterministic registry address for an
// owner's lot:
//
//	addr = HKDF-SHA256(IKM=owner, Salt="lot", Info="agrilot-lot-address")
//
// The derivation is one lot per owner: the same owner always maps to
// the same address, so a second registration collides.
func DeriveAddress(owner account.ID) account.ID {
	r := hkdf.New(sha256.New, owner[:], []byte(addressNamespace), []byte(addressInfo))

	var addr account.ID
	// ReadFull over a 32-byte HKDF output cannot fail.
	if _, err := io.ReadFull(r, addr[:]); err != nil {
		panic(err)
	}
	return addr
}
