package reclass

import (
	"fmt"
	"go/token"
	"reflect"
)

// HoldsType reports whether candidate is a slice, an array or a set (a map
// whose values are struct{} or bool) and, when elem is not nil, whether
// every element is an instance of elem. Instances of a subclass count as
// instances of its base.
func HoldsType(candidate any, elem reflect.Type) bool {
	items, ok := collectionItems(reflect.ValueOf(candidate))
	if !ok {
		return false
	}
	if elem == nil {
		return true
	}

	for _, item := range items {
		if item.Kind() == reflect.Interface {
			if item.IsNil() {
				return false
			}
			item = item.Elem()
		}
		if _, ok := upcast(item, elem); !ok {
			return false
		}
	}
	return true
}

func collectionItems(v reflect.Value) ([]reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]reflect.Value, v.Len())
		for i := range items {
			items[i] = v.Index(i)
		}
		return items, true
	case reflect.Map:
		if !isSet(v.Type()) {
			return nil, false
		}
		return v.MapKeys(), true
	}
	return nil, false
}

func isSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}
	e := t.Elem()
	return e.Kind() == reflect.Bool || (e.Kind() == reflect.Struct && e.NumField() == 0)
}

func validateNames(names []string) error {
	for _, name := range names {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%w: method names must be identifiers: %q", ErrType, name)
		}
	}
	return nil
}
