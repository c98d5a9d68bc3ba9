// Package mock provides test doubles for schedgen interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/schedforge/schedgen"
)

// Interface compliance checks.
var (
	_ schedgen.Provider = (*Provider)(nil)
	_ schedgen.Stream   = (*Stream)(nil)
)

// Provider is a test double for schedgen.Provider.
// Set StreamFn before calling Stream.
type Provider struct {
	StreamFn func(ctx context.Context, req schedgen.Request) (schedgen.Stream, error)
}

// Stream delegates to StreamFn.
func (p *Provider) Stream(ctx context.Context, req schedgen.Request) (schedgen.Stream, error) {
	return p.StreamFn(ctx, req)
}
