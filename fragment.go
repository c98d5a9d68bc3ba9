package schedgen

// Fragment is one chunk of text delivered by the streaming completion
// service before the full reply is known. Fragments carry no structural
// metadata; arrival order is significant and must be preserved by every
// consumer.
type Fragment struct {
	Text string
}

// FragmentSink consumes fragments in arrival order. Implementations must
// not reorder, deduplicate, or batch: once a stream ends, the concatenation
// seen by every sink is identical.
type FragmentSink interface {
	WriteFragment(Fragment) error
}
