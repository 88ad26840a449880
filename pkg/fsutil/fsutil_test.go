package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello"), 0o644))

	content, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte("# Hello"), content)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestReadFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadFile(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("content"), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
