package lot

import "github.com/agrilotorg/libagrilot-go/account"

// MaxNameBytes is the maximum encoded length of a lot name.
const MaxNameBytes = 40

// Lot represents one registered agricultural asset. A lot is created
// once and never updated or deleted; distributions read it for
// authorization only.
type Lot struct {
	Owner         account.ID // authorized to trigger distributions
	Name          string     // human-readable label, at most MaxNameBytes encoded
	YieldEstimate uint64     // advisory only, validated positive at creation
	HarvestTime   int64      // unix seconds, strictly future at creation
	TokenMint     account.ID // mint whose holders share in revenue
}

// Address returns the deterministic registry address of this lot.
func (l *Lot) Address() account.ID {
	return DeriveAddress(l.Owner)
}
