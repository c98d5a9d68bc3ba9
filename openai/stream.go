package openai

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/schedforge/schedgen"
)

// doneSentinel is the data payload that terminates a completions stream.
const doneSentinel = "[DONE]"

// maxLineSize bounds a single SSE line; a chunk carries one content delta,
// so lines stay far below this.
const maxLineSize = 1024 * 1024

// stream implements [schedgen.Stream] by parsing SSE events from an HTTP
// response body.
type stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool
	err     error // terminal error, if any
}

// Interface compliance check.
var _ schedgen.Stream = (*stream)(nil)

func newStream(body io.ReadCloser) *stream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &stream{
		body:    body,
		scanner: scanner,
	}
}

// Next reads SSE events until a chunk with content arrives and returns it
// as a fragment. Returns io.EOF after the [DONE] sentinel or when the body
// is exhausted. Chunks without content (the initial role-only delta, the
// final finish_reason chunk) are skipped.
func (s *stream) Next() (schedgen.Fragment, error) {
	if s.done {
		return schedgen.Fragment{}, io.EOF
	}
	if s.err != nil {
		return schedgen.Fragment{}, s.err
	}

	for {
		data, err := s.readSSEData()
		if err != nil {
			if err == io.EOF {
				s.done = true
				return schedgen.Fragment{}, io.EOF
			}
			s.err = err
			return schedgen.Fragment{}, s.err
		}

		if data == doneSentinel {
			s.done = true
			return schedgen.Fragment{}, io.EOF
		}

		var chunk sseChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			s.err = fmt.Errorf("openai: failed to parse chunk: %w", err)
			return schedgen.Fragment{}, s.err
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			return schedgen.Fragment{Text: delta}, nil
		}
		// Role-only or finish chunk, keep reading.
	}
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	return s.body.Close()
}

// readSSEData reads lines until a complete SSE event is assembled and
// returns its data payload.
func (s *stream) readSSEData() (string, error) {
	var dataBuf strings.Builder

	for s.scanner.Scan() {
		line := s.scanner.Text()

		if line == "" {
			// Empty line signals end of event.
			if dataBuf.Len() > 0 {
				return dataBuf.String(), nil
			}
			// Empty event, keep reading.
			continue
		}

		if strings.HasPrefix(line, "data: ") {
			if dataBuf.Len() > 0 {
				dataBuf.WriteByte('\n')
			}
			dataBuf.WriteString(strings.TrimPrefix(line, "data: "))
		}
		// Ignore comments (lines starting with ':') and unknown fields.
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	// Scanner exhausted without error = EOF.
	if dataBuf.Len() > 0 {
		return dataBuf.String(), nil
	}
	return "", io.EOF
}
