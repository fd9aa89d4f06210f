package record

import (
	"reflect"
	"time"
)

var (
	timeType  = reflect.TypeOf(time.Time{})
	bytesType = reflect.TypeOf([]byte{})
)

type identity struct {
	rType reflect.Type
	ptr   uintptr
	len   int
}

// pointerIdentity returns identity of a non nil pointer
func pointerIdentity(value interface{}) (identity, bool) {
	if value == nil {
		return identity{}, false
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Ptr || rValue.IsNil() {
		return identity{}, false
	}
	return identity{rType: rValue.Type(), ptr: rValue.Pointer()}, true
}

func isTimeType(candidate reflect.Type) bool {
	return EnsureStructType(candidate) == timeType
}

// EnsureStructType returns struct type for struct or pointer to struct type, otherwise nil
func EnsureStructType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return EnsureStructType(t.Elem())
	}
	return nil
}

func isByteSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() == reflect.Uint8
	}
	return false
}
