// Package graph builds the expression DAG that tenkai compiles.
//
// A *Node is an immutable operation: a Kind, an ordered argument list,
// a structural hash used for common-subexpression elimination, and an
// optional constant/external-function payload. Combinators (Add, Sub,
// Mul, Negate, Sin, Cos, ExtFunc) apply a small set of algebraic
// identities before allocating a new node, and fold two Constant
// operands eagerly.
//
// Nodes form a DAG, not a tree: the same *Node may appear as an
// argument of several consumers. The caller back-references used by
// traverse.go are ordinary *Node pointers, not weak references: a Node
// keeps its consumers reachable, and Go's garbage collector reclaims
// the resulting cycles without any weak-pointer bookkeeping.
//
//	x := graph.Var(rng)
//	y := graph.Var(rng)
//	sum, err := graph.Add(x, y)
//
// Errors:
//
//	ErrNilArgument   - a combinator received a nil *Node.
//	ErrEmptyExtName  - ExtFunc was given an empty name.
//	ErrNoArguments   - ExtFunc was given zero arguments.
package graph
