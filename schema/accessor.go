package schema

import (
	"reflect"
	"strconv"
)

type (
	//Child describes a single field or element discovered in a record or collection
	Child struct {
		Label string
		Kind  Kind
		Value interface{}
		//Ref is a comparable identity of Value, nil when the value cannot recur (i.e. scalar or plain struct value)
		Ref interface{}
		//Tag holds struct tag of the field the value was read from
		Tag reflect.StructTag
		//Type is the declared field type, or the actual type for elements and roots, nil when unknown
		Type reflect.Type
	}

	//Accessor enumerates and classifies children of records and collections.
	//Implementations have to be side effect free and return a stable order for the same instance.
	Accessor interface {
		//Classify returns a descriptor for a standalone value (traversal root)
		Classify(value interface{}) (Child, error)
		//Fields returns record fields in declaration order, empty when there are none
		Fields(record interface{}) ([]Child, error)
		//Elements returns collection elements in iteration order, empty when there are none
		Elements(collection interface{}) ([]Child, error)
	}
)

// Children dispatches to Fields or Elements depending on kind, scalars have no children
func Children(accessor Accessor, value interface{}, kind Kind) ([]Child, error) {
	switch kind {
	case KindRecord:
		return accessor.Fields(value)
	case KindCollection:
		return accessor.Elements(value)
	}
	return nil, nil
}

// ElementLabel returns a label for a sequence element
func ElementLabel(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
