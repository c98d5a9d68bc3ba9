package mock

import "github.com/schedforge/schedgen"

// Interface compliance check.
var _ schedgen.FragmentSink = (*Sink)(nil)

// Sink is a test double for schedgen.FragmentSink.
// Set WriteFragmentFn before use.
type Sink struct {
	WriteFragmentFn func(schedgen.Fragment) error
}

// WriteFragment delegates to WriteFragmentFn.
func (s *Sink) WriteFragment(f schedgen.Fragment) error {
	return s.WriteFragmentFn(f)
}
