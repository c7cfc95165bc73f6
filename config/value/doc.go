// Package value defines the generic tree that parsed configuration is held in.
//
// A tree is a Table whose values are exactly one of:
//   - string
//   - int64
//   - float64
//   - bool
//   - []any holding values of the same closed set
//   - Table
//
// Parsers produce whatever Go types their decoder emits; Normalize and
// FromMap fold those into the closed set above so that the rest of the
// config package only ever switches over six kinds.
package value
