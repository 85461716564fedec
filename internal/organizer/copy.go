package organizer

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src to dst, replacing dst if it exists, and returns the
// number of bytes written. A partial destination is removed on failure.
func CopyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	size, err := io.Copy(dstFile, srcFile)
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}
	return size, nil
}

// MoveFile moves src to dst, replacing dst if it exists. Rename is tried
// first; a cross-device move falls back to copy-then-remove.
func MoveFile(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}

	if err := os.Rename(src, dst); err == nil {
		return info.Size(), nil
	}

	size, err := CopyFile(src, dst)
	if err != nil {
		return 0, err
	}
	if err := os.Remove(src); err != nil {
		return size, fmt.Errorf("remove source after copy: %w", err)
	}
	return size, nil
}
