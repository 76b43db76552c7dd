package multimodal

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork indicates an operation named a PT network id that is
// not registered in the graph's transit.Collection.
var ErrUnknownNetwork = errors.New("multimodal: unknown PT network")

// ErrForeignVertex indicates a Vertex or Edge value was handed to a Graph
// method that did not produce it: a network id, selection membership, or
// dense descriptor it names does not belong to this graph. This is a
// ProgrammerError per the failure-semantics model, never a recoverable
// condition, so assertf panics with it rather than returning it.
var ErrForeignVertex = errors.New("multimodal: foreign vertex or edge")

// assertf panics, wrapping ErrForeignVertex, when cond is false. It
// centralizes the ProgrammerError-class panics this package raises when a
// caller hands a Graph method a Vertex/Edge it did not produce.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrForeignVertex, fmt.Sprintf(format, args...)))
	}
}
