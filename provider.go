package schedgen

import "context"

// Stream uses a pull-based iterator pattern. Next returns the next
// [Fragment] from the completion service, or io.EOF once the service
// signals no further fragments. Cancellation flows through the context
// passed to Provider.Stream(). A non-EOF error is terminal: subsequent
// calls to Next return the same error.
type Stream interface {
	Next() (Fragment, error)
	Close() error
}

// Provider is a strategy pattern interface for LLM completion services.
type Provider interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}
