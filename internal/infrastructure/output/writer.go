// Package output persists translator artifacts to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

// Write writes data to path atomically: the content goes to a uniquely
// named temporary file in the target directory and is renamed into place
// only once fully written. A failed translation therefore never leaves a
// partial output file behind.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &schema.IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &schema.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
