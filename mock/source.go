package mock

import "github.com/schedforge/schedgen"

// Interface compliance checks.
var (
	_ schedgen.Source           = (*Source)(nil)
	_ schedgen.CheckpointWriter = (*Checkpoint)(nil)
)

// Source is a test double for schedgen.Source.
// Set the function fields for the methods you need.
type Source struct {
	ReadFn       func() (string, error)
	CheckpointFn func() (schedgen.CheckpointWriter, error)
	CommitFn     func(code string) error
}

// Read delegates to ReadFn.
func (s *Source) Read() (string, error) {
	return s.ReadFn()
}

// Checkpoint delegates to CheckpointFn.
func (s *Source) Checkpoint() (schedgen.CheckpointWriter, error) {
	return s.CheckpointFn()
}

// Commit delegates to CommitFn.
func (s *Source) Commit(code string) error {
	return s.CommitFn(code)
}

// Checkpoint is a test double for schedgen.CheckpointWriter.
// WriteFragmentFn panics when nil; CloseFn is nil-safe (no-op).
type Checkpoint struct {
	WriteFragmentFn func(schedgen.Fragment) error
	CloseFn         func() error
}

// WriteFragment delegates to WriteFragmentFn.
func (c *Checkpoint) WriteFragment(f schedgen.Fragment) error {
	return c.WriteFragmentFn(f)
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (c *Checkpoint) Close() error {
	if c.CloseFn == nil {
		return nil
	}
	return c.CloseFn()
}
