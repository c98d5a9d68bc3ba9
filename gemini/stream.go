package gemini

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/schedforge/schedgen"
	"google.golang.org/genai"
)

// stream implements [schedgen.Stream] by wrapping the genai SDK's streaming
// iterator.
type stream struct {
	pull func() (*genai.GenerateContentResponse, error, bool)
	stop func()
	done bool
	err  error // terminal error, if any
}

// Interface compliance check.
var _ schedgen.Stream = (*stream)(nil)

func newStream(iterFn iter.Seq2[*genai.GenerateContentResponse, error]) *stream {
	next, stop := iter.Pull2(iterFn)
	return &stream{
		pull: next,
		stop: stop,
	}
}

// Next pulls chunks until one carries text and returns it as a fragment.
// Returns io.EOF when the iterator is exhausted.
func (s *stream) Next() (schedgen.Fragment, error) {
	if s.done {
		return schedgen.Fragment{}, io.EOF
	}
	if s.err != nil {
		return schedgen.Fragment{}, s.err
	}

	for {
		resp, err, ok := s.pull()
		if !ok {
			s.done = true
			return schedgen.Fragment{}, io.EOF
		}
		if err != nil {
			s.err = fmt.Errorf("gemini: %w", err)
			return schedgen.Fragment{}, s.err
		}
		if text := chunkText(resp); text != "" {
			return schedgen.Fragment{Text: text}, nil
		}
		// Chunk without text content (metadata, thoughts), keep pulling.
	}
}

// Close releases the underlying iterator.
func (s *stream) Close() error {
	s.stop()
	return nil
}

// chunkText concatenates the text parts of the first candidate, skipping
// thought parts.
func chunkText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
