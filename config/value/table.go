package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// ErrUnrepresentable is returned when a decoded value has no place in the tree.
var ErrUnrepresentable = errors.New("value cannot be represented")

// Table maps keys to normalized values. Keys are unique; when a table is
// built from decoder output the last write for a key wins.
type Table map[string]any

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a deep copy of t. A nil table clones to an empty one.
func Clone(t Table) Table {
	out := make(Table, len(t))
	for key, v := range t {
		out[key] = CloneValue(v)
	}

	return out
}

// CloneValue deep-copies arrays and tables; scalars are returned as is.
func CloneValue(v any) any {
	switch typed := v.(type) {
	case Table:
		return Clone(typed)
	case []any:
		out := make([]any, len(typed))
		for i, elem := range typed {
			out[i] = CloneValue(elem)
		}

		return out
	default:
		return v
	}
}

// FromMap normalizes decoder output into a Table.
//
// Entries that cannot be represented are left out. The returned table holds
// everything that could be kept, and the error joins one entry per dropped
// key. Nil values are treated as absent and dropped silently.
func FromMap(m map[string]any) (Table, error) {
	return fromMap(m, "")
}

func fromMap(m map[string]any, prefix string) (Table, error) {
	out := make(Table, len(m))

	var errs []error

	for key, raw := range m {
		if raw == nil {
			continue
		}

		normalized, err := normalize(raw, joinKey(prefix, key))
		if normalized != nil {
			out[key] = normalized
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	return out, errors.Join(errs...)
}

// Normalize folds a single decoder value into the closed set of tree types.
func Normalize(v any) (any, error) {
	return normalize(v, "")
}

//nolint:cyclop // one case per decoder type.
func normalize(raw any, key string) (any, error) {
	switch typed := raw.(type) {
	case string, int64, float64, bool:
		return typed, nil
	case int:
		return int64(typed), nil
	case int8:
		return int64(typed), nil
	case int16:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case uint8:
		return int64(typed), nil
	case uint16:
		return int64(typed), nil
	case uint32:
		return int64(typed), nil
	case uint:
		return fromUnsigned(uint64(typed), key)
	case uint64:
		return fromUnsigned(typed, key)
	case float32:
		return float64(typed), nil
	case time.Time:
		return typed.Format(time.RFC3339Nano), nil
	case Table:
		return fromMap(typed, key)
	case map[string]any:
		return fromMap(typed, key)
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for k, v := range typed {
			converted[fmt.Sprint(k)] = v
		}

		return fromMap(converted, key)
	case []any:
		return normalizeSlice(typed, key)
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			elems := make([]any, rv.Len())
			for i := range elems {
				elems[i] = rv.Index(i).Interface()
			}

			return normalizeSlice(elems, key)
		}

		return nil, fmt.Errorf("%w: key %q has type %T", ErrUnrepresentable, key, raw)
	}
}

func normalizeSlice(elems []any, key string) (any, error) {
	out := make([]any, 0, len(elems))

	var errs []error

	for i, elem := range elems {
		if elem == nil {
			continue
		}

		normalized, err := normalize(elem, key+"["+strconv.Itoa(i)+"]")
		if normalized != nil {
			out = append(out, normalized)
		}

		if err != nil {
			errs = append(errs, err)
		}
	}

	return out, errors.Join(errs...)
}

func fromUnsigned(v uint64, key string) (any, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w: key %q overflows int64", ErrUnrepresentable, key)
	}

	return int64(v), nil
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// ToString renders a scalar in its canonical text form.
// It returns false for arrays, tables and anything outside the tree types.
func ToString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}
