package mock

import (
	"io"

	"github.com/schedforge/schedgen"
)

// Stream is a test double for schedgen.Stream.
// Set the function fields for the methods you need. NextFn panics when nil
// to catch missing setup. CloseFn is nil-safe (no-op) because test code
// commonly calls defer stream.Close() without needing custom behavior.
type Stream struct {
	NextFn  func() (schedgen.Fragment, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (schedgen.Fragment, error) {
	return s.NextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// ScriptedStream returns a Stream that yields the given fragments in order
// and then io.EOF.
func ScriptedStream(fragments ...string) *Stream {
	i := 0
	return &Stream{
		NextFn: func() (schedgen.Fragment, error) {
			if i >= len(fragments) {
				return schedgen.Fragment{}, io.EOF
			}
			frag := schedgen.Fragment{Text: fragments[i]}
			i++
			return frag, nil
		},
	}
}
