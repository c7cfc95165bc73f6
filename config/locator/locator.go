package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when the file is not present in the starting
// directory or any of its parents.
var ErrNotFound = errors.New("file not found in any parent directory")

// ErrEmptyName is returned when an empty file name is given.
var ErrEmptyName = errors.New("file name must not be empty")

// Find searches startDir and then each parent directory for name and returns
// the absolute path of the first match. Directories with the same name do not
// count as a match. An absolute name is checked as is.
func Find(name, startDir string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	if filepath.IsAbs(name) {
		if isFile(name) {
			return filepath.Clean(name), nil
		}

		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory %q: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s (searched from %s)", ErrNotFound, name, startDir)
		}

		dir = parent
	}
}

// FindFromWorkingDir runs Find starting at the process working directory.
func FindFromWorkingDir(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	return Find(name, wd)
}

func isFile(path string) bool {
	stat, err := os.Stat(path)

	return err == nil && !stat.IsDir()
}
