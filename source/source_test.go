package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schedforge/schedgen"
	"github.com/schedforge/schedgen/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_Read(t *testing.T) {
	t.Parallel()
	path := tempFile(t, "fn main() {}")

	got, err := source.NewFile(path).Read()
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", got)
}

func TestFile_ReadMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing.rs")

	_, err := source.NewFile(path).Read()
	assert.ErrorIs(t, err, schedgen.ErrResourceUnavailable)
}

func TestFile_CheckpointWritesIncrementally(t *testing.T) {
	t.Parallel()
	path := tempFile(t, "old content")
	f := source.NewFile(path)

	cp, err := f.Checkpoint()
	require.NoError(t, err)

	// Opening the checkpoint truncates the previous content.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, cp.WriteFragment(schedgen.Fragment{Text: "Hello"}))

	// The fragment is on disk before the stream ends.
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))

	require.NoError(t, cp.WriteFragment(schedgen.Fragment{Text: " world"}))
	require.NoError(t, cp.Close())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", string(data))
}

func TestFile_CheckpointUnwritableDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "main.rs")

	_, err := source.NewFile(path).Checkpoint()
	assert.ErrorIs(t, err, schedgen.ErrResourceUnavailable)
}

func TestFile_Commit(t *testing.T) {
	t.Parallel()
	path := tempFile(t, "raw streamed text with ```rust fences```")
	f := source.NewFile(path)

	require.NoError(t, f.Commit("fn main() { /* ok */ }"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() { /* ok */ }", string(data))
}

func TestFile_CommitIdempotent(t *testing.T) {
	t.Parallel()
	path := tempFile(t, "old")
	f := source.NewFile(path)

	require.NoError(t, f.Commit("fn main() {}"))
	require.NoError(t, f.Commit("fn main() {}"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", string(data))
}

func TestFile_CommitPreservesPermissions(t *testing.T) {
	t.Parallel()
	path := tempFile(t, "old")
	require.NoError(t, os.Chmod(path, 0o600))
	f := source.NewFile(path)

	require.NoError(t, f.Commit("new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFile_CommitUnwritable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "main.rs")

	err := source.NewFile(path).Commit("code")
	assert.ErrorIs(t, err, schedgen.ErrResourceUnavailable)
}
