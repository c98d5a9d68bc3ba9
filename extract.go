package schedgen

import "strings"

// fenceMarker delimits a code region in a model response. The start marker
// is the fence followed by the language tag; the end marker is the bare
// fence.
const fenceMarker = "```"

// ExtractCode isolates the code region from a complete model response.
//
// It locates the first occurrence of the start marker ("```"+language) and
// the first occurrence of the end marker strictly after it, and returns the
// substring between them with leading and trailing whitespace trimmed. Any
// additional fenced regions are ignored: the model is instructed to emit at
// most one relevant code block.
//
// If either marker is absent the entire response is returned verbatim, with
// no trimming. A missing fence is a defined fallback, not an error; the
// downstream build step owns validity of the result either way.
func ExtractCode(response, language string) string {
	start := fenceMarker + language
	i := strings.Index(response, start)
	if i < 0 {
		return response
	}
	rest := i + len(start)
	j := strings.Index(response[rest:], fenceMarker)
	if j < 0 {
		return response
	}
	return strings.TrimSpace(response[rest : rest+j])
}
