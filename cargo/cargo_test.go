package cargo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/schedforge/schedgen"
	"github.com/schedforge/schedgen/cargo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolchain_BuildSuccess(t *testing.T) {
	t.Parallel()
	tc := cargo.New(cargo.WithBuildCommand("true"))

	status, err := tc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schedgen.ExitStatus(0), status)
}

func TestToolchain_NonzeroExitIsStatusNotError(t *testing.T) {
	t.Parallel()
	tc := cargo.New(cargo.WithBuildCommand("sh", "-c", "exit 42"))

	status, err := tc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schedgen.ExitStatus(42), status)
}

func TestToolchain_RunOutputPassthrough(t *testing.T) {
	t.Parallel()
	var stdout, stderr strings.Builder
	tc := cargo.New(
		cargo.WithRunCommand("sh", "-c", "echo out; echo err >&2"),
		cargo.WithOutput(&stdout, &stderr),
	)

	status, err := tc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schedgen.ExitStatus(0), status)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestToolchain_WorkingDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	var stdout strings.Builder
	tc := cargo.New(
		cargo.WithDir(dir),
		cargo.WithBuildCommand("pwd"),
		cargo.WithOutput(&stdout, &stdout),
	)

	_, err := tc.Build(context.Background())
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), dir)
}

func TestToolchain_MissingBinaryIsError(t *testing.T) {
	t.Parallel()
	tc := cargo.New(cargo.WithBuildCommand("definitely-not-a-real-binary-7f3a"))

	_, err := tc.Build(context.Background())
	assert.Error(t, err)
}
