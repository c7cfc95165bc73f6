package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/0xalexb/hjarta-config/config/value"
)

// TagName is the struct tag Decode reads field keys from.
// A field matches the key equal to its tag, or to its Go name when untagged.
// When that key is absent the lowercased form is tried; no other case
// folding is done, so "NAME" never fills a field named "name".
const TagName = "config"

//nolint:gochecknoglobals // reflect type used for comparisons.
var durationType = reflect.TypeOf(time.Duration(0))

// Decode fills target, a pointer to a struct, from the whole tree.
//
// Pointer fields are optional and stay nil when their key is absent. Every
// other field is required. Keys without a matching field are ignored.
// Integers widen into float fields; floats never narrow into integer fields.
// Every failing field is reported, joined, as a *FieldError wrapping
// ErrMissingField or ErrFieldTypeMismatch.
func (c *Config) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	err := checkStruct(rv.Elem().Type(), c.table, "")
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        matchName,
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(map[string]any(value.Clone(c.table)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFieldTypeMismatch, err)
	}

	return nil
}

// Decode is the generic form of Config.Decode.
func Decode[T any](c *Config) (T, error) {
	var target T

	err := c.Decode(&target)

	return target, err
}

func checkStruct(t reflect.Type, table value.Table, prefix string) error {
	var errs []error

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key, squash := fieldKey(field)
		if key == "-" {
			continue
		}

		if squash {
			inner := field.Type
			if inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}

			if inner.Kind() == reflect.Struct {
				errs = append(errs, checkStruct(inner, table, prefix))

				continue
			}
		}

		name := joinField(prefix, key)

		found, ok := matchKey(table, key)
		if !ok {
			if field.Type.Kind() != reflect.Pointer {
				errs = append(errs, &FieldError{Field: name, Err: ErrMissingField})
			}

			continue
		}

		errs = append(errs, checkValue(field.Type, found, name))
	}

	return errors.Join(errs...)
}

//nolint:cyclop,exhaustive // one branch per supported target kind.
func checkValue(t reflect.Type, found any, name string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == durationType {
		return checkDuration(found, name)
	}

	kind := value.KindOf(found)
	fail := func() error {
		return &FieldError{Field: name, Expected: t.String(), Actual: kind, Err: ErrFieldTypeMismatch}
	}

	switch t.Kind() {
	case reflect.String:
		if kind != value.KindString {
			return fail()
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := found.(int64)
		if !ok || reflect.Zero(t).OverflowInt(n) {
			return fail()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := found.(int64)
		if !ok || n < 0 || reflect.Zero(t).OverflowUint(uint64(n)) {
			return fail()
		}
	case reflect.Float32, reflect.Float64:
		if kind != value.KindFloat && kind != value.KindInteger {
			return fail()
		}
	case reflect.Bool:
		if kind != value.KindBoolean {
			return fail()
		}
	case reflect.Slice, reflect.Array:
		elems, ok := found.([]any)
		if !ok {
			return fail()
		}

		var errs []error
		for i, elem := range elems {
			errs = append(errs, checkValue(t.Elem(), elem, name+"["+strconv.Itoa(i)+"]"))
		}

		return errors.Join(errs...)
	case reflect.Map:
		table, ok := found.(value.Table)
		if !ok || t.Key().Kind() != reflect.String {
			return fail()
		}

		var errs []error
		for key, elem := range table {
			errs = append(errs, checkValue(t.Elem(), elem, joinField(name, key)))
		}

		return errors.Join(errs...)
	case reflect.Struct:
		table, ok := found.(value.Table)
		if !ok {
			return fail()
		}

		return checkStruct(t, table, name)
	case reflect.Interface:
		return nil
	default:
		return fail()
	}

	return nil
}

func checkDuration(found any, name string) error {
	switch typed := found.(type) {
	case int64:
		return nil
	case string:
		_, err := time.ParseDuration(typed)
		if err == nil {
			return nil
		}
	}

	return &FieldError{
		Field:    name,
		Expected: durationType.String(),
		Actual:   value.KindOf(found),
		Err:      ErrFieldTypeMismatch,
	}
}

// fieldKey returns the key a field is matched against and whether it is squashed.
func fieldKey(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get(TagName)
	name, opts, _ := strings.Cut(tag, ",")

	squash := false

	for _, opt := range strings.Split(opts, ",") {
		if opt == "squash" {
			squash = true
		}
	}

	if name == "" {
		name = field.Name
	}

	return name, squash
}

// matchKey finds key in table, then its lowercased form. It must agree with
// matchName, which mapstructure consults after its own exact lookup.
func matchKey(table value.Table, key string) (any, bool) {
	if found, ok := table[key]; ok {
		return found, true
	}

	found, ok := table[strings.ToLower(key)]

	return found, ok
}

func matchName(mapKey, fieldName string) bool {
	return mapKey == strings.ToLower(fieldName)
}

func joinField(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + PathSeparator + key
}
