package visitor

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// AnyMapVisitorOf creates a sorted key visitor from any map value
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]bool:
		return AnyTypedMapVisitorOf[string, bool](actual), nil
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[int]string:
		return AnyTypedMapVisitorOf[int, string](actual), nil
	case map[int]interface{}:
		return AnyTypedMapVisitorOf[int, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns sorted key visitor for typed map
func AnyTypedMapVisitorOf[K cmp.Ordered, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for _, k := range slices.Sorted(maps.Keys(aMap)) {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor visits any map via reflection in SortKeys order
type AnyMapVisitor struct {
	data reflect.Value
}

type mapEntry struct {
	key   reflect.Value
	value reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
// Entries are read with a map iterator, so keys that cannot be looked up (i.e. NaN) are visited too.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	entries := make([]mapEntry, 0, v.data.Len())
	for iter := v.data.MapRange(); iter.Next(); {
		entries = append(entries, mapEntry{key: iter.Key(), value: iter.Value()})
	}
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		return compareKeys(a.key, b.key)
	})
	for _, entry := range entries {
		continueVisit, err := f(entry.key.Interface(), entry.value.Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// SortKeys sorts map keys in place: numbers numerically, strings lexically,
// booleans false first, anything else by its formatted text.
func SortKeys(keys []reflect.Value) []reflect.Value {
	slices.SortStableFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		}
		return 1
	}
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(boolInt(a.IsValid()), boolInt(b.IsValid()))
	}
	return strings.Compare(fmt.Sprintf("%v", a.Interface()), fmt.Sprintf("%v", b.Interface()))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
