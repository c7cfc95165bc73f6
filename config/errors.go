package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config/value"
)

var (
	// ErrFileNotFound is returned by New when the configuration file is not
	// present in the start directory or any parent. It is the one fatal
	// construction error.
	ErrFileNotFound = errors.New("configuration file not found")

	// ErrParse marks a file that was found but could not be read or parsed.
	// It is never returned by New; see Config.LoadError.
	ErrParse = errors.New("configuration file could not be parsed")

	// ErrKeyNotFound is returned when a dotted path does not resolve.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned when a resolved value has the wrong kind for the accessor.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingField is returned by Decode for a required field with no matching key.
	ErrMissingField = errors.New("missing field")

	// ErrFieldTypeMismatch is returned by Decode when a key holds the wrong kind for its field.
	ErrFieldTypeMismatch = errors.New("field type mismatch")

	// ErrInvalidTarget is returned by Decode when the target is not a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer to a struct")
)

// KeyError describes a failed accessor call.
type KeyError struct {
	Path     string
	Expected value.Kind
	Actual   value.Kind
	Err      error
}

func (e *KeyError) Error() string {
	if errors.Is(e.Err, ErrTypeMismatch) {
		return fmt.Sprintf("key %q: %v: expected %s, got %s", e.Path, e.Err, e.Expected, e.Actual)
	}

	return fmt.Sprintf("key %q: %v", e.Path, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func notFound(path string) error {
	return &KeyError{Path: path, Err: ErrKeyNotFound}
}

func mismatch(path string, expected value.Kind, actual any) error {
	return &KeyError{Path: path, Expected: expected, Actual: value.KindOf(actual), Err: ErrTypeMismatch}
}

// FieldError describes a struct field that Decode could not fill.
// Field is the dotted key path of the field relative to the decoded tree.
type FieldError struct {
	Field    string
	Expected string
	Actual   value.Kind
	Err      error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%v %q", e.Err, e.Field)
	}

	return fmt.Sprintf("field %q: %v: expected %s, got %s", e.Field, e.Err, e.Expected, e.Actual)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
