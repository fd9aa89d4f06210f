package document

import (
	"fmt"
	"unsafe"

	"github.com/viant/structwalk/schema"
	"gopkg.in/yaml.v3"
)

// Accessor implements schema.Accessor for *Object, Array and *yaml.Node documents.
// Objects and YAML mappings are records, arrays and YAML sequences are collections, anything else is a scalar.
type Accessor struct{}

// Classify returns root value descriptor
func (a *Accessor) Classify(value interface{}) (schema.Child, error) {
	return a.describe("", value)
}

// Fields returns object members or mapping pairs in document order
func (a *Accessor) Fields(record interface{}) ([]schema.Child, error) {
	switch actual := record.(type) {
	case *Object:
		result := make([]schema.Child, 0, actual.Len())
		for i := 0; i < actual.Len(); i++ {
			entry := actual.Entries[i]
			child, err := a.describe(entry.Key, entry.Value)
			if err != nil {
				return nil, err
			}
			result = append(result, child)
		}
		return result, nil
	case *yaml.Node:
		node := resolve(actual)
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("expected YAML mapping at line %d, got %v", node.Line, kindName(node.Kind))
		}
		result := make([]schema.Child, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			child, err := a.describe(resolve(node.Content[i]).Value, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			result = append(result, child)
		}
		return result, nil
	}
	return nil, fmt.Errorf("expected document record, got %T", record)
}

// Elements returns array or sequence elements
func (a *Accessor) Elements(collection interface{}) ([]schema.Child, error) {
	var items []interface{}
	switch actual := collection.(type) {
	case Array:
		items = actual
	case *yaml.Node:
		node := resolve(actual)
		if node.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("expected YAML sequence at line %d, got %v", node.Line, kindName(node.Kind))
		}
		for _, item := range node.Content {
			items = append(items, item)
		}
	default:
		return nil, fmt.Errorf("expected document collection, got %T", collection)
	}
	result := make([]schema.Child, 0, len(items))
	for i, item := range items {
		child, err := a.describe(schema.ElementLabel(i), item)
		if err != nil {
			return nil, err
		}
		result = append(result, child)
	}
	return result, nil
}

func (a *Accessor) describe(label string, value interface{}) (schema.Child, error) {
	ret := schema.Child{Label: label, Kind: schema.KindScalar, Value: value}
	switch actual := value.(type) {
	case *Object:
		if actual != nil {
			ret.Kind = schema.KindRecord
			ret.Ref = actual
		}
	case Array:
		ret.Kind = schema.KindCollection
		if len(actual) > 0 {
			ret.Ref = unsafe.SliceData([]interface{}(actual))
		}
	case *yaml.Node:
		if actual == nil {
			ret.Value = nil
			return ret, nil
		}
		node := resolve(actual)
		ret.Value = node
		switch node.Kind {
		case yaml.MappingNode:
			ret.Kind = schema.KindRecord
			ret.Ref = node
		case yaml.SequenceNode:
			ret.Kind = schema.KindCollection
			ret.Ref = node
		case yaml.ScalarNode:
			var scalar interface{}
			if err := node.Decode(&scalar); err != nil {
				return ret, fmt.Errorf("failed to decode %v at line %d: %w", label, node.Line, err)
			}
			ret.Value = scalar
		default:
			ret.Value = nil
		}
	}
	return ret, nil
}

// resolve unwraps document and alias nodes
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind(%d)", kind)
}

// New creates document accessor
func New() *Accessor {
	return &Accessor{}
}
