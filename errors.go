package structwalk

import (
	"fmt"

	"github.com/viant/structwalk/schema"
)

type (
	//CycleError reports a child referencing itself or one of its ancestors
	CycleError struct {
		Path  string
		Label string
		Depth int
		//Ancestor path of the referenced node
		Ancestor string
	}

	//SchemaError reports a child classified with a kind the engine cannot interpret
	SchemaError struct {
		Path  string
		Label string
		Kind  schema.Kind
	}

	//VisitorError wraps an error returned by a visitor handler
	VisitorError struct {
		Sequence int
		Path     string
		Err      error
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %v references its ancestor %v", displayPath(e.Path), displayPath(e.Ancestor))
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unsupported kind %v at %v", e.Kind, displayPath(e.Path))
}

func (e *VisitorError) Error() string {
	return fmt.Sprintf("failed to visit #%d %v: %v", e.Sequence, displayPath(e.Path), e.Err)
}

func (e *VisitorError) Unwrap() error {
	return e.Err
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
