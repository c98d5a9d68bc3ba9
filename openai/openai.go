// Package openai implements [schedgen.Provider] for the OpenAI Chat
// Completions API.
//
// It connects to the streaming endpoint via SSE over net/http and emits one
// [schedgen.Fragment] per content delta through the pull-based
// [schedgen.Stream] interface. The stream terminates on the "[DONE]"
// sentinel.
package openai

const (
	defaultBaseURL  = "https://api.openai.com"
	defaultModel    = "gpt-4o"
	completionsPath = "/v1/chat/completions"
)

// apiRequest is the JSON body sent to the Chat Completions API.
type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	Stream   bool         `json:"stream"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SSE response types.

// sseChunk is one streamed chat.completion.chunk object.
type sseChunk struct {
	Choices []sseChoice `json:"choices"`
}

type sseChoice struct {
	Delta        sseDelta `json:"delta"`
	FinishReason *string  `json:"finish_reason"`
}

// sseDelta carries the incremental content. The first chunk holds only the
// role; the final chunk before [DONE] holds neither.
type sseDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// apiErrorResponse is the JSON body returned on non-200 HTTP responses.
type apiErrorResponse struct {
	Error apiErrorDetail `json:"error"`
}

type apiErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
