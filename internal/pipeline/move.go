package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// moveToStore relocates a processed source file into the done or failed
// store, falling back to copy+remove when rename crosses filesystems.
func moveToStore(src, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("%w: create store: %v", ErrMoveFailed, err)
	}
	dst := filepath.Join(destDir, filepath.Base(src))

	if err := os.Rename(src, dst); err == nil {
		return dst, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("%w: open source: %v", ErrMoveFailed, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: create destination: %v", ErrMoveFailed, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: copy content: %v", ErrMoveFailed, err)
	}
	if err := out.Sync(); err != nil {
		return "", fmt.Errorf("%w: sync: %v", ErrMoveFailed, err)
	}
	_ = in.Close()
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("%w: remove source: %v", ErrMoveFailed, err)
	}
	return dst, nil
}
