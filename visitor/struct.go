package visitor

import (
	"fmt"
	"go/token"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *structType]()

type (
	//Field describes a struct field in declaration order
	Field struct {
		Name      string
		Tag       reflect.StructTag
		Type      reflect.Type
		Index     int
		Anonymous bool
		Exported  bool
		xField    *xunsafe.Field
	}

	structType struct {
		fields []*Field
	}

	// StructVisitor implements Visitor[*Field, interface{}] for structs using xunsafe
	StructVisitor struct {
		value interface{}
		ptr   unsafe.Pointer
		xType *structType
	}
)

// Value returns field value for supplied struct pointer
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// Fields returns cached field descriptors for supplied struct (or pointer to struct) type
func Fields(t reflect.Type) []*Field {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return lookupStructType(t).fields
}

func lookupStructType(t reflect.Type) *structType {
	if ret, ok := structCache.Get(t); ok {
		return ret
	}
	xStruct := xunsafe.NewStruct(t)
	ret := &structType{fields: make([]*Field, len(xStruct.Fields))}
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		ret.fields[i] = &Field{
			Name:      xField.Name,
			Tag:       xField.Tag,
			Type:      xField.Type,
			Index:     i,
			Anonymous: xField.Anonymous,
			Exported:  token.IsExported(xField.Name),
			xField:    xField,
		}
	}
	structCache.Put(t, ret)
	return ret
}

// StructVisitorOf creates a StructVisitor from any struct or pointer to struct value.
// A nil pointer produces a visitor with no fields.
func StructVisitorOf(value interface{}) (Visitor[*Field, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return func(func(key *Field, element interface{}) (bool, error)) error { return nil }, nil
		}
	case reflect.Struct:
		structType = valueType
		//xunsafe reads through pointer, copy value to addressable memory
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	visitor := &StructVisitor{
		value: value,
		ptr:   xunsafe.AsPointer(value),
		xType: lookupStructType(structType),
	}
	return visitor.Visit, nil
}

// Visit iterates over struct fields in declaration order, calling f with each field and its value
func (w *StructVisitor) Visit(f func(key *Field, element interface{}) (bool, error)) error {
	for _, field := range w.xType.fields {
		continueVisit, err := f(field, field.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
