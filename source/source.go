// Package source manages the canonical source file: the single on-disk file
// treated as the authoritative current version of the program being
// transformed. It implements [schedgen.Source] with two clearly separated
// write steps: an incremental checkpoint of the raw streamed response, and
// a final commit of the cleaned, extracted code.
package source

import (
	"fmt"
	"os"

	"github.com/schedforge/schedgen"
)

// Interface compliance checks.
var (
	_ schedgen.Source           = (*File)(nil)
	_ schedgen.CheckpointWriter = (*Checkpoint)(nil)
)

// File is a canonical source file at a fixed path.
type File struct {
	path string
}

// NewFile creates a File for the given path. The file is not touched until
// Read, Checkpoint, or Commit is called.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Read returns the file's full current contents.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %v: %w", f.path, err, schedgen.ErrResourceUnavailable)
	}
	return string(data), nil
}

// Checkpoint truncates the file and returns a writer that appends each
// fragment immediately, so partial progress is observable while streaming
// is in progress. The checkpointed content is raw response text, fence
// markers included; Commit replaces it with the cleaned code.
func (f *File) Checkpoint() (schedgen.CheckpointWriter, error) {
	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("source: checkpoint %s: %v: %w", f.path, err, schedgen.ErrResourceUnavailable)
	}
	return &Checkpoint{path: f.path, fd: fd}, nil
}

// Commit overwrites the file with code as its new and complete content,
// preserving existing permission bits. After a successful commit, reading
// the path returns exactly code.
func (f *File) Commit(code string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(f.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(f.path, []byte(code), perm); err != nil {
		return fmt.Errorf("source: commit %s: %v: %w", f.path, err, schedgen.ErrResourceUnavailable)
	}
	return nil
}

// Checkpoint writes streamed fragments to the canonical file as they
// arrive. Writes are unbuffered: each fragment hits the file before the
// next is pulled from the stream.
type Checkpoint struct {
	path string
	fd   *os.File
}

// WriteFragment appends the fragment's text to the file.
func (c *Checkpoint) WriteFragment(frag schedgen.Fragment) error {
	if _, err := c.fd.WriteString(frag.Text); err != nil {
		return fmt.Errorf("source: checkpoint write %s: %v: %w", c.path, err, schedgen.ErrResourceUnavailable)
	}
	return nil
}

// Close closes the underlying file handle.
func (c *Checkpoint) Close() error {
	if err := c.fd.Close(); err != nil {
		return fmt.Errorf("source: checkpoint close %s: %v: %w", c.path, err, schedgen.ErrResourceUnavailable)
	}
	return nil
}
