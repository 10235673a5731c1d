package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File keeps the best score as plain decimal text at Path.
type File struct {
	Path string
}

// NewFileStore returns a File store for path.
func NewFileStore(path string) *File { return &File{Path: path} }

// Load reads the file. A missing file yields (0, nil); unparsable content
// yields 0 and an ErrRead-wrapped error.
func (f *File) Load(ctx context.Context) (int, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRead, f.Path, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s: invalid content %q", ErrRead, f.Path, strings.TrimSpace(string(b)))
	}
	return n, nil
}

// Save writes score through a temp file and rename so a crash never leaves
// a truncated file behind.
func (f *File) Save(ctx context.Context, score int) error {
	dir := filepath.Dir(f.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", ErrWrite, dir, err)
		}
	}
	tmp, err := os.CreateTemp(dir, ".best-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
