package gemini

import (
	"iter"

	"github.com/schedforge/schedgen"
	"google.golang.org/genai"
)

// NewStreamFromIter exposes newStream for external tests.
func NewStreamFromIter(iterFn iter.Seq2[*genai.GenerateContentResponse, error]) schedgen.Stream {
	return newStream(iterFn)
}
