package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct binds values to the struct pointed to by v using tagName struct tags.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	return bindFields(v, tagName, func(name string) []string { return values[name] }, bindErr)
}

// bindFields assigns the values returned by lookup to the tagged fields of
// the struct pointed to by v. Fields with no values keep their current value.
func bindFields(v any, tagName string, lookup func(name string) []string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	return bindStruct(rv, tagName, lookup, bindErr)
}

// bindStruct walks the exported fields of rv, descending into untagged
// embedded structs.
func bindStruct(rv reflect.Value, tagName string, lookup func(name string) []string, bindErr error) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if fieldType.Anonymous && fieldType.Type.Kind() == reflect.Struct && fieldType.Tag.Get(tagName) == "" {
			if err := bindStruct(field, tagName, lookup, bindErr); err != nil {
				return err
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		paramName, ok := parseFieldTag(fieldType, tagName)
		if !ok {
			continue
		}

		fieldValues := lookup(paramName)
		if len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, paramName, err)
		}
	}

	return nil
}

// parseFieldTag returns the parameter name for field. Untagged and "-" fields
// are not bound.
func parseFieldTag(field reflect.StructField, tagName string) (string, bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" || tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return "", false
	}
	return name, true
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// parseBool accepts strconv.ParseBool values plus the checkbox spellings
// "on", "off", "yes" and "no".
func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		all = append(all, strings.Split(v, ",")...)
	}

	slice := reflect.MakeSlice(fieldType, len(all), len(all))
	for i, value := range all {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
