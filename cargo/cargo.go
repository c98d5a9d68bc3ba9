// Package cargo invokes the downstream build toolchain: a release-mode
// build of the project containing the canonical source file, followed by
// execution of the produced artifact. Defaults target a cargo project whose
// binary runs under sudo, matching a user-space scheduler that needs
// elevated privileges to register with the kernel.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"

	"github.com/schedforge/schedgen"
)

// Interface compliance check.
var _ schedgen.Builder = (*Toolchain)(nil)

// Toolchain implements [schedgen.Builder] over os/exec. Command output is
// passed through to the configured writers so the operator sees the build
// and the running scheduler directly.
type Toolchain struct {
	dir       string
	buildArgv []string
	runArgv   []string
	stdout    io.Writer
	stderr    io.Writer
}

// Option configures a [Toolchain].
type Option func(*Toolchain)

// WithDir sets the working directory for both steps. Default is the
// process's current directory.
func WithDir(dir string) Option {
	return func(t *Toolchain) { t.dir = dir }
}

// WithBuildCommand sets the build argv. Default is "cargo build --release".
func WithBuildCommand(argv ...string) Option {
	return func(t *Toolchain) {
		if len(argv) > 0 {
			t.buildArgv = argv
		}
	}
}

// WithRunCommand sets the run argv. Default runs the release binary under
// sudo.
func WithRunCommand(argv ...string) Option {
	return func(t *Toolchain) {
		if len(argv) > 0 {
			t.runArgv = argv
		}
	}
}

// WithOutput sets the writers that receive command output. Defaults are
// os.Stdout and os.Stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(t *Toolchain) {
		t.stdout = stdout
		t.stderr = stderr
	}
}

// New creates a Toolchain with the given options.
func New(opts ...Option) *Toolchain {
	t := &Toolchain{
		buildArgv: []string{"cargo", "build", "--release"},
		runArgv:   []string{"sudo", "./target/release/scx_rust_scheduler"},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Build runs the build command and returns its exit status.
func (t *Toolchain) Build(ctx context.Context) (schedgen.ExitStatus, error) {
	return t.exec(ctx, t.buildArgv)
}

// Run executes the built artifact and returns its exit status.
func (t *Toolchain) Run(ctx context.Context) (schedgen.ExitStatus, error) {
	return t.exec(ctx, t.runArgv)
}

// exec runs argv to completion. A nonzero exit is reported as a status, not
// an error; an error means the command could not be invoked at all.
func (t *Toolchain) exec(ctx context.Context, argv []string) (schedgen.ExitStatus, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("cargo: empty command")
	}

	cmd := osexec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = t.dir
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr

	err := cmd.Run()
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return schedgen.ExitStatus(exitErr.ExitCode()), nil
	}
	if err != nil {
		return 0, fmt.Errorf("cargo: %s: %w", argv[0], err)
	}
	return 0, nil
}
