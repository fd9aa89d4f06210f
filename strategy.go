package structwalk

import (
	"fmt"
	"strings"
)

// Strategy defines traversal order
type Strategy int

const (
	//StrategyBFS level order, all nodes at depth d precede nodes at depth d+1
	StrategyBFS Strategy = iota
	//StrategyPreOrder node, then each child subtree left to right
	StrategyPreOrder
	//StrategyInOrder first child subtree, node, then remaining child subtrees left to right
	StrategyInOrder
	//StrategyPostOrder each child subtree left to right, then node
	StrategyPostOrder
	//StrategyReversePreOrder pre-order with children visited right to left
	StrategyReversePreOrder
	//StrategyReversePostOrder post-order with children visited right to left
	StrategyReversePostOrder
)

var strategyNames = []string{"bfs", "preorder", "inorder", "postorder", "reversePreorder", "reversePostorder"}

// Strategies returns all supported strategies
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyPreOrder, StrategyInOrder, StrategyPostOrder, StrategyReversePreOrder, StrategyReversePostOrder}
}

func (s Strategy) String() string {
	if s.IsValid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// IsValid returns true for supported strategies
func (s Strategy) IsValid() bool {
	return s >= StrategyBFS && s <= StrategyReversePostOrder
}

// IsDepthFirst returns true for stack driven strategies
func (s Strategy) IsDepthFirst() bool {
	return s.IsValid() && s != StrategyBFS
}

// IsReverse returns true if children are visited in reverse sibling order
func (s Strategy) IsReverse() bool {
	return s == StrategyReversePreOrder || s == StrategyReversePostOrder
}

// ParseStrategy parses strategy name in any case format, i.e. "bfs", "dfs_preorder", "reverse-post-order"
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)
	normalized = strings.TrimPrefix(normalized, "dfs")
	switch normalized {
	case "bfs", "breadthfirst", "levelorder":
		return StrategyBFS, nil
	case "preorder", "depthfirst":
		return StrategyPreOrder, nil
	case "inorder":
		return StrategyInOrder, nil
	case "postorder":
		return StrategyPostOrder, nil
	case "reversepreorder":
		return StrategyReversePreOrder, nil
	case "reversepostorder":
		return StrategyReversePostOrder, nil
	}
	return StrategyBFS, fmt.Errorf("unsupported strategy: %q, supported: %v", name, strings.Join(strategyNames, ", "))
}
