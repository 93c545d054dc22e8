// Package validation holds the predicates the workflow services use to vet
// raw input before any persistence call. Every function is total: it reports
// false rather than panicking on unexpected input.
package validation

import (
	"math"
	"reflect"
	"slices"
	"strings"
)

// ID is the set of numeric types an identifier may arrive as.
type ID interface {
	~int | ~int32 | ~int64 | ~float64
}

// IsValidID reports whether n is a finite, integral value greater than zero.
func IsValidID[N ID](n N) bool {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f > 0 && f == math.Trunc(f)
}

// IsValidStrings reports whether every argument is non-empty.
// Calling it with no arguments reports false.
func IsValidStrings(strs ...string) bool {
	if len(strs) == 0 {
		return false
	}
	for _, s := range strs {
		if s == "" {
			return false
		}
	}
	return true
}

// IsValidObject reports whether every exported field of the struct obj holds a
// non-zero value, skipping fields whose JSON name appears in nullable.
func IsValidObject(obj any, nullable ...string) bool {
	v, ok := structValue(obj)
	if !ok {
		return false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, ok := propertyName(t.Field(i))
		if !ok || slices.Contains(nullable, name) {
			continue
		}
		if v.Field(i).IsZero() {
			return false
		}
	}
	return true
}

// IsPropertyOf reports whether key names a property of the record shape. The
// shape must be a struct or a pointer to one; anything else reports false.
func IsPropertyOf(key string, shape any) bool {
	if shape == nil {
		return false
	}
	t := reflect.TypeOf(shape)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if name, ok := propertyName(t.Field(i)); ok && name == key {
			return true
		}
	}
	return false
}

// IsEmptyObject reports whether obj carries nothing: nil, a nil pointer, an
// empty map or slice, or a struct with every exported field at its zero value.
func IsEmptyObject(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if _, ok := propertyName(t.Field(i)); ok && !v.Field(i).IsZero() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func structValue(obj any) (reflect.Value, bool) {
	if obj == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.Kind() == reflect.Struct
}

// propertyName returns the JSON property name of a struct field. Unexported
// fields and fields tagged json:"-" are not properties.
func propertyName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return f.Name, true
}
