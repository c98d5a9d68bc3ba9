package schedgen

import "fmt"

// Request carries model selection and the composed instruction for a single
// completion call. Immutable once constructed; consumed once.
type Request struct {
	Model  string // model ID, provider-specific; empty = provider default
	Prompt string
}

// Validate checks universal constraints on Request.
// Provider implementations may apply additional provider-specific validation.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt must be non-empty: %w", ErrValidation)
	}
	return nil
}
