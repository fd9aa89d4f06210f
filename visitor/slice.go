package visitor

import (
	"fmt"
	"reflect"
)

// AnySliceVisitorOf creates a visitor from any slice, array or pointer to array value
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []float32:
		return AnyTypedSliceVisitorOf[float32](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr && val.Type().Elem().Kind() == reflect.Array {
		if val.IsNil() {
			return AnyTypedSliceVisitorOf[any](nil), nil
		}
		val = val.Elem()
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf returns visitor for typed slice
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitor implements Visitor[int, any] for slices and arrays of any type
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over elements via reflection
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
