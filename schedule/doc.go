// Package schedule linearizes an expression DAG into a straight-line,
// deduplicated sequence of operations — the schedule the register
// allocator and encoder walk step by step.
//
// Linearize performs a depth-first traversal from the outputs using an
// explicit stack (never recursion, for the same reason graph.Reachable
// avoids it: compiled graphs are not expected to be shallow), then
// reverses the resulting order and deduplicates by Hash, keeping each
// hash's first occurrence. The reversal is what turns a "consumers
// discovered before their producers" stack-pop order into a valid
// topological order — producers end up before consumers, and an input
// leaf always ends up before its first use.
//
// Errors:
//
//	ErrDuplicateInput    - the inputs slice names the same value twice.
//	ErrOutputEqualsInput - an output node is also one of the inputs.
package schedule
