package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4b")
	dst := filepath.Join(dir, "dst.m4b")
	require.NoError(t, os.WriteFile(src, []byte("audio-bytes"), 0644))

	size, err := CopyFile(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(len("audio-bytes")), size)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	// Source survives a copy.
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestCopyFile_Overwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4b")
	dst := filepath.Join(dir, "dst.m4b")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("previous content"), 0644))

	_, err := CopyFile(src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := CopyFile(filepath.Join(dir, "absent.m4b"), filepath.Join(dir, "dst.m4b"))
	assert.ErrorIs(t, err, ErrCopyFailed)
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4b")
	dst := filepath.Join(dir, "dst.m4b")
	require.NoError(t, os.WriteFile(src, []byte("audio-bytes"), 0644))

	size, err := MoveFile(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(len("audio-bytes")), size)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))
}

func TestMoveFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := MoveFile(filepath.Join(dir, "absent.m4b"), filepath.Join(dir, "dst.m4b"))
	assert.Error(t, err)
}
