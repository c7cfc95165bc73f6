// Package env snapshots the process environment as a flat value.Table.
//
// Every variable becomes one top-level string key under its exact,
// case-sensitive name. No splitting on dots or underscores happens here; a
// variable named "a.b" is a single flat key "a.b".
package env

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/0xalexb/hjarta-config/config/value"
	cenv "github.com/caarlos0/env/v11"
)

// ErrSkipped is returned, joined per entry, for variables that cannot be used as keys.
var ErrSkipped = errors.New("environment entry skipped")

// Snapshot captures os.Environ once.
func Snapshot() (value.Table, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron converts "KEY=value" entries into a flat table.
// Entries with an empty name or a name or value that is not valid UTF-8
// are skipped; the rest of the table is still returned.
func FromEnviron(environ []string) (value.Table, error) {
	vars := cenv.ToMap(environ)
	table := make(value.Table, len(vars))

	var errs []error

	for name, val := range vars {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%w: empty name", ErrSkipped))
		case !utf8.ValidString(name) || !utf8.ValidString(val):
			errs = append(errs, fmt.Errorf("%w: %q is not valid UTF-8", ErrSkipped, name))
		default:
			table[name] = val
		}
	}

	return table, errors.Join(errs...)
}

// FromMap builds a snapshot from an explicit name to value map.
func FromMap(vars map[string]string) value.Table {
	table := make(value.Table, len(vars))
	for name, val := range vars {
		table[name] = val
	}

	return table
}
