package config

import (
	"strings"

	"github.com/0xalexb/hjarta-config/config/value"
)

// PathSeparator separates segments of a dotted path.
const PathSeparator = "."

func splitPath(path string) ([]string, bool) {
	if path == "" {
		return nil, false
	}

	segments := strings.Split(path, PathSeparator)
	for _, segment := range segments {
		if segment == "" {
			return nil, false
		}
	}

	return segments, true
}

// resolve walks segments through nested tables.
//
// At each table the single next segment is tried first (nested descent),
// then progressively longer runs of segments joined with dots as literal flat
// keys. A branch that dead-ends backtracks to the next longer key.
//
// Because descent wins, a flat key that lives inside a table of the same
// name as its first segment is only reachable with that name repeated: with
// table "a" holding the literal key "a.b.c", the path "a.b.c" does not
// resolve but "a.a.b.c" does.
func resolve(table value.Table, segments []string) (any, bool) {
	for end := 1; end <= len(segments); end++ {
		found, ok := table[strings.Join(segments[:end], PathSeparator)]
		if !ok {
			continue
		}

		if end == len(segments) {
			return found, true
		}

		sub, isTable := found.(value.Table)
		if !isTable {
			continue
		}

		if leaf, ok := resolve(sub, segments[end:]); ok {
			return leaf, true
		}
	}

	return nil, false
}
