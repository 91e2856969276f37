package fs

import (
	"os"

	"github.com/pkg/errors"
)

// EnsureDir creates dir and any missing parents. It is a no-op when dir
// already exists.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.New("dir path is empty")
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrap(err, "ensure dir")
	}

	return nil
}
