// Package sink provides fragment sinks for live progress display.
package sink

import (
	"io"

	"github.com/schedforge/schedgen"
)

// Interface compliance check.
var _ schedgen.FragmentSink = (*Writer)(nil)

// Writer adapts an io.Writer into a [schedgen.FragmentSink]. Each fragment
// is written unbuffered, as-is, so a human watching the writer observes
// generation as it happens and sees exactly the accumulated response text.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFragment writes the fragment's text to the underlying writer.
func (s *Writer) WriteFragment(frag schedgen.Fragment) error {
	_, err := io.WriteString(s.w, frag.Text)
	return err
}
