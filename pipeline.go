// Package schedgen rewrites a scheduler's source code with an LLM: it
// composes a transformation instruction from a natural-language requirement
// and the current source, streams the model's reply to a progress sink and
// an incremental working-file checkpoint, extracts the embedded code from
// the response, commits it back to the canonical source file, and triggers
// the downstream build and run steps.
package schedgen

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const defaultLanguage = "rust"

// Pipeline orchestrates one transformation: compose, stream, extract,
// commit, build and run. Control flow is a single sequential pass; the only
// interleaving is the per-fragment fan-out to the progress and checkpoint
// sinks, applied in strict arrival order.
type Pipeline struct {
	provider Provider
	source   Source
	progress FragmentSink
	builder  Builder
	model    string
	language string
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithProgress sets the sink that echoes each fragment as it arrives, so a
// human can observe generation as it happens. Nil (the default) disables
// the progress display for non-interactive contexts.
func WithProgress(s FragmentSink) Option {
	return func(p *Pipeline) { p.progress = s }
}

// WithBuilder sets the toolchain invoked after a successful commit.
// Nil (the default) skips the build and run steps.
func WithBuilder(b Builder) Option {
	return func(p *Pipeline) { p.builder = b }
}

// WithModel sets the model ID for provider requests.
// Empty string means the provider uses its default model.
func WithModel(model string) Option {
	return func(p *Pipeline) { p.model = model }
}

// WithLanguage sets the language tag of the fence start marker.
// Default is rust.
func WithLanguage(language string) Option {
	return func(p *Pipeline) { p.language = language }
}

// New creates a Pipeline over the given provider and canonical source.
func New(provider Provider, source Source, opts ...Option) *Pipeline {
	p := &Pipeline{
		provider: provider,
		source:   source,
		language: defaultLanguage,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Result reports the outcome of a pipeline run.
type Result struct {
	Response    string     // full accumulated model response
	Code        string     // extracted code committed to the source file
	BuildStatus ExitStatus // StatusSkipped when no Builder is configured
	RunStatus   ExitStatus
}

// Run executes the transformation pipeline for one requirement.
//
// The source file is read before any network call; a read failure aborts
// with [ErrResourceUnavailable]. Streaming failures abort with
// [ErrExternalService] and leave the working file in whatever partial state
// the incremental checkpoint writes produced; no rollback is attempted.
// Build and run exit statuses are recorded in the Result but never returned
// as errors.
func (p *Pipeline) Run(ctx context.Context, requirement string) (Result, error) {
	res := Result{BuildStatus: StatusSkipped, RunStatus: StatusSkipped}

	original, err := p.source.Read()
	if err != nil {
		return res, err
	}

	req := Request{
		Model:  p.model,
		Prompt: ComposePrompt(requirement, original),
	}
	if err := req.Validate(); err != nil {
		return res, err
	}

	stream, err := p.provider.Stream(ctx, req)
	if err != nil {
		return res, fmt.Errorf("open stream: %v: %w", err, ErrExternalService)
	}
	defer stream.Close()

	checkpoint, err := p.source.Checkpoint()
	if err != nil {
		return res, err
	}

	response, err := p.consume(stream, checkpoint)
	if cerr := checkpoint.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return res, err
	}
	res.Response = response

	res.Code = ExtractCode(res.Response, p.language)
	if err := p.source.Commit(res.Code); err != nil {
		return res, err
	}

	if p.builder == nil {
		return res, nil
	}
	res.BuildStatus, err = p.builder.Build(ctx)
	if err != nil {
		return res, err
	}
	res.RunStatus, err = p.builder.Run(ctx)
	if err != nil {
		return res, err
	}
	return res, nil
}

// consume drains the stream, forwarding each fragment first to the progress
// sink and then to the checkpoint, in arrival order. Both sinks see the
// identical fragment sequence; once the stream ends their accumulated
// content matches the returned response exactly.
func (p *Pipeline) consume(stream Stream, checkpoint CheckpointWriter) (string, error) {
	var buf strings.Builder
	for {
		frag, err := stream.Next()
		if err == io.EOF {
			return buf.String(), nil
		}
		if err != nil {
			return buf.String(), fmt.Errorf("stream: %v: %w", err, ErrExternalService)
		}
		if p.progress != nil {
			if err := p.progress.WriteFragment(frag); err != nil {
				return buf.String(), fmt.Errorf("progress sink: %w", err)
			}
		}
		if err := checkpoint.WriteFragment(frag); err != nil {
			return buf.String(), err
		}
		buf.WriteString(frag.Text)
	}
}
