package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-config/config/locator"
)

// ErrRead is returned when the located file exists but cannot be read.
var ErrRead = errors.New("reading config file")

// Fetcher implements config.DataFetcher for a file found by upward search.
// The file is located and read once at construction time and the contents are cached.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that locates name starting at startDir
// (the working directory when startDir is empty), then reads and caches it.
//
// The constructor returns an error wrapping locator.ErrNotFound when no parent
// directory holds the file, and ErrRead when it was found but could not be read.
func NewFetcher(name, startDir string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		var (
			path string
			err  error
		)

		if startDir == "" {
			path, err = locator.FindFromWorkingDir(name)
		} else {
			path, err = locator.Find(name, startDir)
		}

		if err != nil {
			return nil, fmt.Errorf("locating %q: %w", name, err)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the locator
		if err != nil {
			return &Fetcher{path: path, data: nil}, fmt.Errorf("%w %q: %w", ErrRead, path, err)
		}

		return &Fetcher{
			path: path,
			data: data,
		}, nil
	}
}

// Fetch returns a copy of the cached file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the absolute path the file was found at.
func (f *Fetcher) Path() string {
	return f.path
}
