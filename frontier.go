package structwalk

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
	"github.com/viant/structwalk/schema"
)

type (
	//frontier holds pending nodes, next returns nil node once exhausted
	frontier interface {
		next() (*Node, error)
	}

	expander struct {
		accessor schema.Accessor
		maxDepth int
	}

	queue struct {
		*expander
		nodes   []*Node
		pending *Node
	}

	frame struct {
		node     *Node
		children []*Node
		next     int
		expanded bool
		emitted  bool
	}

	stack struct {
		*expander
		strategy Strategy
		frames   []*frame
	}
)

func (e *expander) root(value interface{}) (*Node, error) {
	if roots, ok := value.(Roots); ok {
		return &Node{value: roots, kind: schema.KindCollection, rType: reflect.TypeOf(roots)}, nil
	}
	child, err := e.accessor.Classify(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to classify root %T", value)
	}
	if !child.Kind.IsValid() {
		return nil, &SchemaError{Label: child.Label, Kind: child.Kind}
	}
	if err = checkRef(child.Ref, "", child.Label); err != nil {
		return nil, err
	}
	child.Label = ""
	return newNode(&child, nil, 0), nil
}

// children discovers children of supplied node in sibling order
func (e *expander) children(parent *Node) ([]*Node, error) {
	if !parent.kind.HasChildren() || (e.maxDepth >= 0 && parent.depth >= e.maxDepth) {
		return nil, nil
	}
	var children []schema.Child
	var err error
	if roots, ok := parent.value.(Roots); ok && parent.parent == nil {
		children, err = e.classify(roots)
	} else {
		children, err = schema.Children(e.accessor, parent.value, parent.kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to discover children of %v", displayPath(parent.Path()))
	}
	if len(children) == 0 {
		return nil, nil
	}
	parentPath := parent.Path()
	result := make([]*Node, 0, len(children))
	for i := range children {
		child := &children[i]
		if !child.Kind.IsValid() {
			return nil, &SchemaError{Path: joinPath(parentPath, child.Label), Label: child.Label, Kind: child.Kind}
		}
		if child.Ref != nil {
			if err = checkRef(child.Ref, parentPath, child.Label); err != nil {
				return nil, err
			}
			if ancestor := parent.lookup(child.Ref); ancestor != nil {
				return nil, &CycleError{Path: joinPath(parentPath, child.Label), Label: child.Label, Depth: parent.depth + 1, Ancestor: ancestor.Path()}
			}
		}
		result = append(result, newNode(child, parent, i))
	}
	return result, nil
}

// classify describes traversal roots as elements of the synthetic root
func (e *expander) classify(roots Roots) ([]schema.Child, error) {
	result := make([]schema.Child, 0, len(roots))
	for i, root := range roots {
		child, err := e.accessor.Classify(root)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to classify root %v", schema.ElementLabel(i))
		}
		child.Label = schema.ElementLabel(i)
		result = append(result, child)
	}
	return result, nil
}

// checkRef rejects identities that cannot be compared, including comparable types holding incomparable values
func checkRef(ref interface{}, parentPath, label string) error {
	if ref == nil || reflect.ValueOf(ref).Comparable() {
		return nil
	}
	return errors.Errorf("invalid identity of %v: %T is not comparable", displayPath(joinPath(parentPath, label)), ref)
}

func newFrontier(strategy Strategy, expander *expander, root *Node) frontier {
	if strategy == StrategyBFS {
		return &queue{expander: expander, nodes: []*Node{root}}
	}
	return &stack{expander: expander, strategy: strategy, frames: []*frame{{node: root}}}
}

// next expands the previously yielded node and dequeues the following one
func (q *queue) next() (*Node, error) {
	if q.pending != nil {
		children, err := q.children(q.pending)
		q.pending = nil
		if err != nil {
			return nil, err
		}
		q.nodes = append(q.nodes, children...)
	}
	if len(q.nodes) == 0 {
		return nil, nil
	}
	node := q.nodes[0]
	q.nodes[0] = nil
	q.nodes = q.nodes[1:]
	q.pending = node
	return node, nil
}

// emitAt returns the number of child subtrees completed before a node with total children is yielded
func (s *stack) emitAt(total int) int {
	switch s.strategy {
	case StrategyInOrder:
		return min(1, total)
	case StrategyPostOrder, StrategyReversePostOrder:
		return total
	}
	return 0
}

func (s *stack) preOrder() bool {
	return s.strategy == StrategyPreOrder || s.strategy == StrategyReversePreOrder
}

func (s *stack) next() (*Node, error) {
	for len(s.frames) > 0 {
		top := s.frames[len(s.frames)-1]
		if !top.emitted && s.preOrder() {
			top.emitted = true
			return top.node, nil
		}
		if !top.expanded {
			children, err := s.children(top.node)
			if err != nil {
				return nil, err
			}
			if s.strategy.IsReverse() {
				slices.Reverse(children)
			}
			top.children = children
			top.expanded = true
		}
		if !top.emitted && top.next == s.emitAt(len(top.children)) {
			top.emitted = true
			return top.node, nil
		}
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.children[top.next] = nil
			top.next++
			s.frames = append(s.frames, &frame{node: child})
			continue
		}
		s.frames[len(s.frames)-1] = nil
		s.frames = s.frames[:len(s.frames)-1]
	}
	return nil, nil
}
