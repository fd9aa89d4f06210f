package structwalk

import (
	"fmt"

	"github.com/viant/structwalk/schema"
)

type leafRecord struct {
	Leaf int `walk:"name=leaf"`
}

type scenarioRecord struct {
	A *leafRecord   `walk:"name=a"`
	B []*leafRecord `walk:"name=b"`
}

type inlineLink struct {
	Name string
	*inlineLink `walk:"inline"`
}

func newScenario() *scenarioRecord {
	return &scenarioRecord{
		A: &leafRecord{Leaf: 1},
		B: []*leafRecord{{Leaf: 2}, {Leaf: 3}},
	}
}

// testNode is a tree node classified by testAccessor, nodes with children are records unless kind is set
type testNode struct {
	name     string
	kind     schema.Kind
	children []*testNode
	ref      interface{}
}

type testAccessor struct {
	err   error
	calls int
}

func (a *testAccessor) describe(node *testNode) schema.Child {
	kind := node.kind
	if kind == 0 {
		kind = schema.KindScalar
		if len(node.children) > 0 {
			kind = schema.KindRecord
		}
	}
	var ref interface{} = node
	if node.ref != nil {
		ref = node.ref
	}
	return schema.Child{Label: node.name, Kind: kind, Value: node, Ref: ref}
}

func (a *testAccessor) Classify(value interface{}) (schema.Child, error) {
	return a.describe(value.(*testNode)), nil
}

func (a *testAccessor) Fields(record interface{}) ([]schema.Child, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	var result []schema.Child
	for _, child := range record.(*testNode).children {
		result = append(result, a.describe(child))
	}
	return result, nil
}

func (a *testAccessor) Elements(collection interface{}) ([]schema.Child, error) {
	return a.Fields(collection)
}

func node(name string, children ...*testNode) *testNode {
	return &testNode{name: name, children: children}
}

// balancedTree builds a tree with fanout children per node, names reflect sibling positions
func balancedTree(name string, depth, fanout int) *testNode {
	ret := node(name)
	if depth == 0 {
		return ret
	}
	for i := 0; i < fanout; i++ {
		ret.children = append(ret.children, balancedTree(fmt.Sprintf("%v%d", name, i), depth-1, fanout))
	}
	return ret
}

func paths(waypoints []*Waypoint) []string {
	var result []string
	for _, waypoint := range waypoints {
		result = append(result, waypoint.Path())
	}
	return result
}

func names(waypoints []*Waypoint) []string {
	var result []string
	for _, waypoint := range waypoints {
		result = append(result, waypoint.Value().(*testNode).name)
	}
	return result
}
