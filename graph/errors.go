package graph

import "errors"

// Sentinel errors for graph construction. Callers should match these
// with errors.Is, not string comparison.
var (
	// ErrNilArgument indicates a combinator received a nil *Node.
	ErrNilArgument = errors.New("graph: nil argument")

	// ErrEmptyExtName indicates ExtFunc was given an empty function name.
	ErrEmptyExtName = errors.New("graph: external function name is empty")

	// ErrNoArguments indicates a non-leaf operation was constructed with
	// zero arguments.
	ErrNoArguments = errors.New("graph: operation requires at least one argument")
)
