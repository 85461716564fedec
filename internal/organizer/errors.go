package organizer

import "errors"

var (
	// ErrCopyFailed indicates the file transfer failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrPathTraversal indicates a destination path would escape the
	// library root.
	ErrPathTraversal = errors.New("path traversal detected")
)
