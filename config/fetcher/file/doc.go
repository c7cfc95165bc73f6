// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is located with the locator package, walking from a start directory
// (the working directory by default) up to the filesystem root, then read once
// and cached. Subsequent calls to Fetch return the same bytes without touching
// the filesystem again.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("conf/app.toml", "")()
//	if errors.Is(err, locator.ErrNotFound) {
//	    // no configuration anywhere above the working directory
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - locator.ErrNotFound when no directory up to the root holds the file
//   - ErrRead when the file was found but reading it failed; the returned
//     Fetcher still reports the path and fetches empty data
package file
