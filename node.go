package structwalk

import (
	"reflect"
	"strings"

	"github.com/viant/structwalk/schema"
)

// Node represents a traversal position, it is immutable once discovered
type Node struct {
	value  interface{}
	kind   schema.Kind
	label  string
	ref    interface{}
	tag    reflect.StructTag
	rType  reflect.Type
	parent *Node
	depth  int
	index  int
}

// Value returns visited record, collection or scalar value
func (n *Node) Value() interface{} {
	return n.value
}

// Kind returns value kind
func (n *Node) Kind() schema.Kind {
	return n.kind
}

// Label returns field name or element label, empty for the root
func (n *Node) Label() string {
	return n.label
}

// Tag returns struct tag of the field holding the value, empty for elements and the root
func (n *Node) Tag() reflect.StructTag {
	return n.tag
}

// Type returns declared field type, or the value type for elements and the root
func (n *Node) Type() reflect.Type {
	return n.rType
}

// Parent returns parent node, nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

// Depth returns distance from the root, root depth is 0
func (n *Node) Depth() int {
	return n.depth
}

// Index returns ordinal position among siblings
func (n *Node) Index() int {
	return n.index
}

// IsRoot returns true for the traversal root
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Ancestors returns ancestors starting from the root
func (n *Node) Ancestors() []*Node {
	result := make([]*Node, n.depth)
	for parent := n.parent; parent != nil; parent = parent.parent {
		result[parent.depth] = parent
	}
	return result
}

// Path returns dotted path from the root, i.e. b[0].leaf
func (n *Node) Path() string {
	if n.parent == nil {
		return n.label
	}
	labels := make([]string, n.depth+1)
	for node := n; node != nil; node = node.parent {
		labels[node.depth] = node.label
	}
	builder := strings.Builder{}
	for _, label := range labels {
		appendPath(&builder, label)
	}
	return builder.String()
}

func appendPath(builder *strings.Builder, label string) {
	if label == "" {
		return
	}
	if builder.Len() > 0 && !strings.HasPrefix(label, "[") {
		builder.WriteByte('.')
	}
	builder.WriteString(label)
}

func joinPath(parent, label string) string {
	builder := strings.Builder{}
	builder.WriteString(parent)
	appendPath(&builder, label)
	return builder.String()
}

// lookup returns the node itself or its ancestor with supplied identity
func (n *Node) lookup(ref interface{}) *Node {
	for node := n; node != nil; node = node.parent {
		if node.ref != nil && node.ref == ref {
			return node
		}
	}
	return nil
}

func newNode(child *schema.Child, parent *Node, index int) *Node {
	ret := &Node{value: child.Value, kind: child.Kind, label: child.Label, ref: child.Ref, tag: child.Tag, rType: child.Type, parent: parent, index: index}
	if parent != nil {
		ret.depth = parent.depth + 1
	}
	return ret
}
