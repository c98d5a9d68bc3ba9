package mock

import (
	"context"

	"github.com/schedforge/schedgen"
)

// Interface compliance check.
var _ schedgen.Builder = (*Builder)(nil)

// Builder is a test double for schedgen.Builder.
// Set the function fields for the methods you need.
type Builder struct {
	BuildFn func(ctx context.Context) (schedgen.ExitStatus, error)
	RunFn   func(ctx context.Context) (schedgen.ExitStatus, error)
}

// Build delegates to BuildFn.
func (b *Builder) Build(ctx context.Context) (schedgen.ExitStatus, error) {
	return b.BuildFn(ctx)
}

// Run delegates to RunFn.
func (b *Builder) Run(ctx context.Context) (schedgen.ExitStatus, error) {
	return b.RunFn(ctx)
}
