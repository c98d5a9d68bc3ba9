package schedgen

import "context"

// ExitStatus is the exit code of an external toolchain step.
type ExitStatus int

// StatusSkipped marks a toolchain step that was never invoked, because no
// Builder is configured.
const StatusSkipped ExitStatus = -1

// Builder invokes the downstream build toolchain against the committed
// source and executes the produced artifact. Exit statuses are reported to
// the caller but never treated as pipeline failure: both steps are
// fire-and-forget from the pipeline's point of view. An error is returned
// only when a step could not be invoked at all.
type Builder interface {
	Build(ctx context.Context) (ExitStatus, error)
	Run(ctx context.Context) (ExitStatus, error)
}
