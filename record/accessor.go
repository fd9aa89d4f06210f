package record

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/structwalk/schema"
	"github.com/viant/structwalk/visitor"
	"github.com/viant/tagly/format/text"
)

// Accessor implements schema.Accessor for arbitrary Go values using reflection.
// Structs are records, slices, arrays and maps are collections, anything else (including time.Time and []byte) is a scalar.
// Map entries are reported in visitor.SortKeys order.
type Accessor struct {
	includeNil bool
	unexported bool
	presence   bool
	tagNames   []string
	caseFormat text.CaseFormat
	plans      *visitor.SyncMap[reflect.Type, *structPlan]
}

type fieldValue struct {
	plan  *fieldPlan
	value interface{}
}

// Classify returns root value descriptor, nil root is reported as scalar
func (a *Accessor) Classify(value interface{}) (schema.Child, error) {
	child, ok := a.describe("", value, nil)
	if !ok {
		return schema.Child{Kind: schema.KindScalar, Value: value, Type: reflect.TypeOf(value)}, nil
	}
	return child, nil
}

// Fields returns struct fields in declaration order
func (a *Accessor) Fields(record interface{}) ([]schema.Child, error) {
	var result []schema.Child
	if err := a.appendFields(&result, record, map[identity]bool{}); err != nil {
		return nil, err
	}
	return result, nil
}

// appendFields appends record fields, inlined holds identities of the record and its inlined owners
func (a *Accessor) appendFields(result *[]schema.Child, record interface{}, inlined map[identity]bool) error {
	rType := reflect.TypeOf(record)
	if rType == nil {
		return nil
	}
	structType := EnsureStructType(rType)
	if structType == nil {
		return fmt.Errorf("expected struct or pointer to struct, got %T", record)
	}
	plan, err := a.structPlan(structType)
	if err != nil {
		return errors.Wrapf(err, "failed to inspect %s", structType)
	}
	visit, err := visitor.StructVisitorOf(record)
	if err != nil {
		return err
	}
	if id, ok := pointerIdentity(record); ok {
		inlined[id] = true
		defer delete(inlined, id)
	}
	var holderValue interface{}
	var visited []fieldValue
	err = visit(func(field *visitor.Field, value interface{}) (bool, error) {
		fieldPlan := plan.fields[field.Index]
		switch {
		case fieldPlan == nil:
		case fieldPlan.holder:
			holderValue = value
		default:
			visited = append(visited, fieldValue{plan: fieldPlan, value: value})
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	for _, item := range visited {
		if a.presence && plan.marker != nil && !plan.marker.IsSet(holderValue, item.plan.Name) {
			continue
		}
		if item.plan.inline {
			//inlined pointer back to an owner is reported as a record child
			if id, ok := pointerIdentity(item.value); !ok || !inlined[id] {
				if err := a.appendFields(result, item.value, inlined); err != nil {
					return err
				}
				continue
			}
		}
		if child, ok := a.describe(item.plan.label, item.value, item.plan); ok {
			*result = append(*result, child)
		}
	}
	return nil
}

// Elements returns slice or array elements in index order, map entries in sorted key order
func (a *Accessor) Elements(collection interface{}) ([]schema.Child, error) {
	if collection == nil {
		return nil, nil
	}
	value := reflect.ValueOf(collection)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
		collection = value.Interface()
	}
	var result []schema.Child
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		visit, err := visitor.AnySliceVisitorOf(collection)
		if err != nil {
			return nil, err
		}
		err = visit(func(index int, element any) (bool, error) {
			if child, ok := a.describe(schema.ElementLabel(index), element, nil); ok {
				result = append(result, child)
			}
			return true, nil
		})
		return result, err
	case reflect.Map:
		visit, err := visitor.AnyMapVisitorOf(collection)
		if err != nil {
			return nil, err
		}
		err = visit(func(key any, element any) (bool, error) {
			if child, ok := a.describe(fmt.Sprintf("%v", key), element, nil); ok {
				result = append(result, child)
			}
			return true, nil
		})
		return result, err
	}
	return nil, fmt.Errorf("expected slice, array or map, got %T", collection)
}

// describe classifies value, it returns false when the value has to be skipped.
// Field descriptor is nil for roots and collection elements.
func (a *Accessor) describe(label string, value interface{}, field *fieldPlan) (schema.Child, bool) {
	ret := schema.Child{Label: label, Kind: schema.KindScalar, Value: value, Type: reflect.TypeOf(value)}
	scalar := false
	if field != nil {
		ret.Tag = field.Tag
		ret.Type = field.Type
		scalar = field.tag.Scalar
	}
	if value == nil {
		return ret, a.includeNil
	}
	rValue := reflect.ValueOf(value)
	rType := rValue.Type()
	switch rType.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			ret.Value = nil
			return ret, a.includeNil
		}
		if scalar {
			return ret, true
		}
		elemType := rType.Elem()
		switch elemType.Kind() {
		case reflect.Struct:
			if !isTimeType(elemType) {
				ret.Kind = schema.KindRecord
				ret.Ref = identity{rType: rType, ptr: rValue.Pointer()}
			}
		case reflect.Slice, reflect.Array, reflect.Map:
			if !isByteSequence(elemType) {
				ret.Kind = schema.KindCollection
				ret.Ref = identity{rType: rType, ptr: rValue.Pointer()}
			}
		}
		return ret, true
	}
	if scalar {
		return ret, true
	}
	switch rType.Kind() {
	case reflect.Struct:
		if !isTimeType(rType) {
			ret.Kind = schema.KindRecord
		}
	case reflect.Slice:
		if rType == bytesType || isByteSequence(rType) {
			break
		}
		ret.Kind = schema.KindCollection
		if !rValue.IsNil() && rValue.Len() > 0 {
			ret.Ref = identity{rType: rType, ptr: rValue.Pointer(), len: rValue.Len()}
		}
	case reflect.Array:
		if !isByteSequence(rType) {
			ret.Kind = schema.KindCollection
		}
	case reflect.Map:
		ret.Kind = schema.KindCollection
		if !rValue.IsNil() {
			ret.Ref = identity{rType: rType, ptr: rValue.Pointer()}
		}
	}
	return ret, true
}

// New creates reflection accessor
func New(opts ...Option) *Accessor {
	ret := &Accessor{plans: visitor.NewSyncMap[reflect.Type, *structPlan]()}
	Options(opts).Apply(ret)
	return ret
}
