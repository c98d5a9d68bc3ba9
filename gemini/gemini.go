// Package gemini implements [schedgen.Provider] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between schedgen's
// domain types and the Gemini API types. Streaming uses the SDK's iter.Seq2
// iterator, wrapped into the pull-based [schedgen.Stream] interface.
package gemini

const defaultModel = "gemini-2.5-pro"
