// Package oracle is the extension point for external data feeds
// (weather, crop prices). The call carries no data contract yet:
// a fetch succeeds if the caller signs and the external program can be
// located, and mutates no state.
package oracle

import (
	"context"

	"github.com/agrilotorg/libagrilot-go/account"
)

// DataSource fetches external data on behalf of a signing caller.
type DataSource interface {
	Fetch(ctx context.Context, caller account.ID) error
}

// Nop is the placeholder data source. It validates that a signer is
// present and succeeds unconditionally.
type Nop struct{}

func (Nop) Fetch(ctx context.Context, caller account.ID) error {
	if caller.IsZero() {
		return ErrMissingSigner
	}
	return nil
}

// Discovered is a data source bound to a DNS-discovered external
// program. Fetch succeeds once the caller signs and at least one
// endpoint resolves; it performs no request and mutates no state.
type Discovered struct {
	Domain   string
	Resolver Resolver
}

func (d *Discovered) Fetch(ctx context.Context, caller account.ID) error {
	if caller.IsZero() {
		return ErrMissingSigner
	}
	resolver := d.Resolver
	if resolver == nil {
		resolver = DefaultResolver
	}
	_, err := ResolveEndpointsWithResolver(d.Domain, resolver)
	return err
}
