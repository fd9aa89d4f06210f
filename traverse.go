package structwalk

// Traverse returns a lazy iterator over root waypoints in the supplied strategy order
func Traverse(root interface{}, strategy Strategy, opts ...Option) *Iterator {
	return newIterator(root, strategy, opts)
}

// Roots represents multiple traversal roots, they are visited as elements of a synthetic collection root
type Roots []interface{}

// TraverseRoots returns a lazy iterator over waypoints of several roots placed under a synthetic collection root,
// waypoint paths of a root subtree start with the root position, i.e. [1].name
func TraverseRoots(roots []interface{}, strategy Strategy, opts ...Option) *Iterator {
	return newIterator(Roots(roots), strategy, opts)
}

// BFS returns a level order iterator
func BFS(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyBFS, opts...)
}

// PreOrder returns a depth first iterator yielding a node before its children
func PreOrder(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyPreOrder, opts...)
}

// InOrder returns a depth first iterator yielding a node after its first child subtree
func InOrder(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyInOrder, opts...)
}

// PostOrder returns a depth first iterator yielding a node after all its children
func PostOrder(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyPostOrder, opts...)
}

// ReversePreOrder returns a pre-order iterator visiting children right to left
func ReversePreOrder(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyReversePreOrder, opts...)
}

// ReversePostOrder returns a post-order iterator visiting children right to left
func ReversePostOrder(root interface{}, opts ...Option) *Iterator {
	return Traverse(root, StrategyReversePostOrder, opts...)
}

// Walk accepts visitor on every waypoint, it stops on the first error
func Walk(root interface{}, strategy Strategy, visitor Visitor, opts ...Option) error {
	it := Traverse(root, strategy, opts...)
	for it.Next() {
		if err := it.Waypoint().Accept(visitor); err != nil {
			return err
		}
	}
	return it.Err()
}

// Flatten collects all waypoints
func Flatten(root interface{}, strategy Strategy, opts ...Option) ([]*Waypoint, error) {
	var result []*Waypoint
	for waypoint, err := range Traverse(root, strategy, opts...).All() {
		if err != nil {
			return nil, err
		}
		result = append(result, waypoint)
	}
	return result, nil
}
