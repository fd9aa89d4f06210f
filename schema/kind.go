package schema

import "fmt"

// Kind classifies a value reached by a traversal
type Kind int

const (
	//KindScalar opaque leaf value, never traversed further
	KindScalar Kind = iota + 1
	//KindRecord value with named, ordered fields
	KindRecord
	//KindCollection ordered sequence or unordered set/mapping
	KindCollection
)

// IsValid returns true for the kinds the engine can interpret
func (k Kind) IsValid() bool {
	switch k {
	case KindScalar, KindRecord, KindCollection:
		return true
	}
	return false
}

// HasChildren returns true if values of this kind can be expanded
func (k Kind) HasChildren() bool {
	return k == KindRecord || k == KindCollection
}

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindCollection:
		return "collection"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}
