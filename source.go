package schedgen

// CheckpointWriter receives raw response fragments incrementally during
// streaming, so partial progress is observable and recoverable if the
// process is interrupted mid-stream. The checkpointed content is the raw
// response text, fence markers included; it is not durable or guaranteed
// correct until the final commit replaces it.
type CheckpointWriter interface {
	FragmentSink
	Close() error
}

// Source is the canonical source file being transformed: the single on-disk
// file treated as the authoritative current version of the program. The
// pipeline exclusively owns writes to it; concurrent invocations race and
// are unsupported.
//
// Checkpoint and Commit are deliberately distinct steps: Checkpoint writes
// raw streamed text as it arrives, Commit overwrites that working state
// with the cleaned, extracted code.
type Source interface {
	Read() (string, error)
	Checkpoint() (CheckpointWriter, error)
	Commit(code string) error
}
