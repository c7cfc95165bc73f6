// Package locator finds a configuration file by walking upward from a
// starting directory.
//
// The file name may carry subdirectories ("conf/app.toml"); every candidate
// directory is joined with the full name, so nested default locations are
// honored at each level.
//
// Usage:
//
//	path, err := locator.FindFromWorkingDir("conf/app.toml")
//	if errors.Is(err, locator.ErrNotFound) {
//	    // nothing between the working directory and the filesystem root
//	}
package locator
