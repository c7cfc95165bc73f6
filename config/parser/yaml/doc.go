// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml to decode a document into a
// generic map, then normalizes it into a value.Table. JSON documents are
// valid YAML and go through the same parser.
//
// Keys containing dots are kept as literal flat keys:
//
//	a:
//	  "b.c": v
//
// holds a table "a" with one key "b.c"; it is not split into nested tables.
//
// Usage:
//
//	table, err := yaml.NewParser().Parse(data)
package yaml
