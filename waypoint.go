package structwalk

import (
	"fmt"

	"github.com/viant/structwalk/schema"
)

// Waypoint represents a node yielded by a traversal run
type Waypoint struct {
	*Node
	sequence int
}

// Sequence returns visitation sequence number, starting from 0 for each run
func (w *Waypoint) Sequence() int {
	return w.sequence
}

// Accept dispatches waypoint to the visitor handler matching value kind
func (w *Waypoint) Accept(visitor Visitor) error {
	if visitor == nil {
		return &VisitorError{Sequence: w.sequence, Path: w.Path(), Err: fmt.Errorf("visitor was nil")}
	}
	var err error
	switch w.kind {
	case schema.KindRecord:
		err = visitor.VisitRecord(w)
	case schema.KindScalar:
		err = visitor.VisitScalar(w)
	case schema.KindCollection:
		if collectionVisitor, ok := visitor.(CollectionVisitor); ok {
			err = collectionVisitor.VisitCollection(w)
		}
	}
	if err != nil {
		return &VisitorError{Sequence: w.sequence, Path: w.Path(), Err: err}
	}
	return nil
}

func (w *Waypoint) String() string {
	path := w.Path()
	if path == "" {
		path = "$"
	}
	return fmt.Sprintf("#%d %v (%v, depth: %d)", w.sequence, path, w.kind, w.depth)
}
