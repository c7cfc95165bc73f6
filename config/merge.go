package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/0xalexb/hjarta-config/config/value"
)

// Merge overlays one tree on another and returns the result as a new table.
// Neither input is modified.
//
// Keys present on one side only pass through. For keys present on both sides
// the overlay wins, empty strings included. When both sides hold a table the
// two tables are merged with the same rule.
func Merge(base, overlay value.Table) (value.Table, error) {
	merged := value.Clone(base)
	src := value.Clone(overlay)

	replaceShapeChanges(merged, src)

	err := mergo.Merge(&merged, src, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue)
	if err != nil {
		return nil, fmt.Errorf("merging sources: %w", err)
	}

	return merged, nil
}

// replaceShapeChanges assigns overlay values directly wherever exactly one
// side is a table, or the key is new. mergo only deep-merges values of the
// same shape.
func replaceShapeChanges(dst, src value.Table) {
	for key, srcVal := range src {
		dstVal, exists := dst[key]

		srcTable, srcIsTable := srcVal.(value.Table)
		dstTable, dstIsTable := dstVal.(value.Table)

		switch {
		case srcIsTable && dstIsTable:
			replaceShapeChanges(dstTable, srcTable)
		case !exists || srcIsTable || dstIsTable:
			dst[key] = srcVal
		}
	}
}
