package config

import (
	"strconv"

	"github.com/0xalexb/hjarta-config/config/value"
)

func (c *Config) lookup(path string) (any, error) {
	segments, ok := splitPath(path)
	if !ok {
		return nil, notFound(path)
	}

	found, ok := resolve(c.table, segments)
	if !ok {
		return nil, notFound(path)
	}

	return found, nil
}

// Lookup resolves a dotted path and returns a copy of the raw value.
func (c *Config) Lookup(path string) (any, error) {
	found, err := c.lookup(path)
	if err != nil {
		return nil, err
	}

	return value.CloneValue(found), nil
}

// Has reports whether path resolves to a value.
func (c *Config) Has(path string) bool {
	_, err := c.lookup(path)

	return err == nil
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	found, err := c.lookup(path)
	if err != nil {
		return "", err
	}

	s, ok := found.(string)
	if !ok {
		return "", mismatch(path, value.KindString, found)
	}

	return s, nil
}

// GetInt returns the integer at path. Floats are not narrowed.
func (c *Config) GetInt(path string) (int64, error) {
	found, err := c.lookup(path)
	if err != nil {
		return 0, err
	}

	n, ok := found.(int64)
	if !ok {
		return 0, mismatch(path, value.KindInteger, found)
	}

	return n, nil
}

// GetFloat returns the number at path. Integers are widened.
func (c *Config) GetFloat(path string) (float64, error) {
	found, err := c.lookup(path)
	if err != nil {
		return 0, err
	}

	switch n := found.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	default:
		return 0, mismatch(path, value.KindFloat, found)
	}
}

// GetBool returns the boolean at path.
func (c *Config) GetBool(path string) (bool, error) {
	found, err := c.lookup(path)
	if err != nil {
		return false, err
	}

	b, ok := found.(bool)
	if !ok {
		return false, mismatch(path, value.KindBoolean, found)
	}

	return b, nil
}

// GetArray returns the array at path with every element rendered as a string.
// Elements must be scalars. An empty array yields an empty, non-nil slice.
func (c *Config) GetArray(path string) ([]string, error) {
	found, err := c.lookup(path)
	if err != nil {
		return nil, err
	}

	elems, ok := found.([]any)
	if !ok {
		return nil, mismatch(path, value.KindArray, found)
	}

	out := make([]string, 0, len(elems))

	for i, elem := range elems {
		s, ok := value.ToString(elem)
		if !ok {
			return nil, mismatch(path+"["+strconv.Itoa(i)+"]", value.KindString, elem)
		}

		out = append(out, s)
	}

	return out, nil
}

// Sub returns the table at path as a new, independent Config.
// Paths on the result are relative to that table.
func (c *Config) Sub(path string) (*Config, error) {
	found, err := c.lookup(path)
	if err != nil {
		return nil, err
	}

	table, ok := found.(value.Table)
	if !ok {
		return nil, mismatch(path, value.KindTable, found)
	}

	return &Config{
		table:   value.Clone(table),
		path:    c.path,
		loadErr: c.loadErr,
	}, nil
}

// Keys returns the sorted top-level keys.
func (c *Config) Keys() []string {
	return c.table.Keys()
}

// Table returns a deep copy of the whole tree.
func (c *Config) Table() value.Table {
	return value.Clone(c.table)
}
