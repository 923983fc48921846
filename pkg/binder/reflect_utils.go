package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/strto/pkg/logger"
	"github.com/dmitrymomot/strto/pkg/radix"
	"github.com/dmitrymomot/strto/pkg/strto"
)

// autoBase marks fields tagged base=auto.
const autoBase = 0

type fieldTag struct {
	name string
	base int
}

// bindToStruct binds values to a struct using reflection.
// tagName specifies which struct tag to use (e.g., "query", "form").
func bindToStruct(r *http.Request, v any, tagName string, values map[string][]string, bindErr error, o *options) error {
	return bindFields(r, v, tagName, bindErr, o, func(name string) []string {
		return values[name]
	})
}

// bindFields walks the exported fields of the struct v points to and sets
// each one from the values returned by lookup for its parameter name.
func bindFields(r *http.Request, v any, tagName string, bindErr error, o *options, lookup func(name string) []string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return wrapf(bindErr, "target must be a non-nil pointer")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return wrapf(bindErr, "target must be a pointer to struct")
	}

	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		tag, skip, err := parseFieldTag(fieldType, tagName)
		if err != nil {
			return fmt.Errorf("%w: field %s: %w", bindErr, fieldType.Name, err)
		}
		if skip {
			continue
		}

		fieldValues := lookup(tag.name)
		if len(fieldValues) == 0 {
			// No value provided, leave as zero value
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues, tag.base); err != nil {
			o.logger.DebugContext(r.Context(), "field rejected",
				logger.Field(fieldType.Name),
				logger.Input(strings.Join(fieldValues, ",")),
				logger.Base(tag.base),
				logger.Conversion(err),
				logger.Error(err),
			)
			return fmt.Errorf("%w: field %s: %w", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag parses the struct field tag and returns the parameter name,
// the integer base and whether to skip the field.
func parseFieldTag(field reflect.StructField, tagName string) (fieldTag, bool, error) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		// No tag, use field name in lowercase
		return fieldTag{name: strings.ToLower(field.Name), base: 10}, false, nil
	}
	if tag == "-" {
		return fieldTag{}, true, nil
	}

	parts := strings.Split(tag, ",")
	ft := fieldTag{name: parts[0], base: 10}
	if ft.name == "" {
		ft.name = strings.ToLower(field.Name)
	}

	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(opt), "=")
		if key != "base" {
			// Other options (e.g. omitempty) don't affect parsing
			continue
		}
		if value == "auto" {
			ft.base = autoBase
			continue
		}
		base, err := strto.Atoi[int](value)
		if err != nil || base < strto.MinBase || base > strto.MaxBase {
			return fieldTag{}, false, fmt.Errorf("%w: base %q", ErrInvalidTag, value)
		}
		ft.base = base
	}

	return ft, false, nil
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string, base int) error {
	// Handle pointer types
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values, base)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values, base)
	}

	// For non-slice types, use the first value
	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := parseSigned(value, fieldType.Bits(), base)
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", value, err)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := parseUnsigned(value, fieldType.Bits(), base)
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", value, err)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Be lenient with boolean values
			switch strings.ToLower(value) {
			case "on", "yes", "1":
				b = true
			case "off", "no", "0", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// setSliceValue sets slice field values from string values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string, base int) error {
	elemType := fieldType.Elem()

	// Support comma-separated values as well
	var allValues []string
	for _, v := range values {
		allValues = append(allValues, strings.Split(v, ",")...)
	}

	slice := reflect.MakeSlice(fieldType, len(allValues), len(allValues))

	for i, value := range allValues {
		elem := slice.Index(i)
		if err := setFieldValue(elem, elemType, []string{strings.TrimSpace(value)}, base); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

// parseSigned parses s into a signed integer of the given bit size.
func parseSigned(s string, bits, base int) (int64, error) {
	switch bits {
	case 8:
		v, err := parseInteger[int8](s, base)
		return int64(v), err
	case 16:
		v, err := parseInteger[int16](s, base)
		return int64(v), err
	case 32:
		v, err := parseInteger[int32](s, base)
		return int64(v), err
	default:
		return parseInteger[int64](s, base)
	}
}

// parseUnsigned parses s into an unsigned integer of the given bit size.
func parseUnsigned(s string, bits, base int) (uint64, error) {
	switch bits {
	case 8:
		v, err := parseInteger[uint8](s, base)
		return uint64(v), err
	case 16:
		v, err := parseInteger[uint16](s, base)
		return uint64(v), err
	case 32:
		v, err := parseInteger[uint32](s, base)
		return uint64(v), err
	default:
		return parseInteger[uint64](s, base)
	}
}

func parseInteger[T constraints.Integer](s string, base int) (T, error) {
	if base == autoBase {
		return radix.ParseAuto[T](s)
	}
	return strto.ParseString[T](s, base)
}

func wrapf(err error, msg string) error {
	return fmt.Errorf("%w: %s", err, msg)
}
