package sexprdot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile loads the whole file at path into memory.
func ReadFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotExist, path)
		}
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return src, nil
}
