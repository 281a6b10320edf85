package schedule

import (
	"github.com/HiroIshida/tenkai/graph"
)

// Schedule is a linearized, CSE-deduplicated sequence of nodes: a
// topological order in which every argument precedes its consumers
// and no two entries share a Hash.
type Schedule struct {
	// Nodes is the linearized sequence; Nodes[t] is the operation at
	// schedule position (step) t.
	Nodes []*graph.Node

	// PosOf maps a node's Hash to its position in Nodes.
	PosOf map[int32]int

	// Inputs and Outputs are the caller-supplied binding order: Inputs[i]
	// occupies Location{Input, i} and Outputs[k] is mirrored to
	// Location{Output, k} wherever it is produced.
	Inputs  []*graph.Node
	Outputs []*graph.Node
}

// Linearize builds a Schedule for the given inputs and outputs. inputs
// need not be exhaustive of every Variable leaf reachable from
// outputs — only the leaves the caller intends to bind — but every
// Variable actually reachable from outputs must appear in inputs, or
// the register allocator will later fail with ErrMissingLocation when
// it reaches an unbound leaf.
func Linearize(inputs, outputs []*graph.Node, opts ...Option) (*Schedule, error) {
	cfg := newConfig(opts...)

	inputHashes := make(map[int32]bool, len(inputs))
	for _, in := range inputs {
		if in == nil {
			return nil, graph.ErrNilArgument
		}
		if inputHashes[in.Hash()] {
			return nil, ErrDuplicateInput
		}
		inputHashes[in.Hash()] = true
	}
	for _, out := range outputs {
		if out == nil {
			return nil, graph.ErrNilArgument
		}
		if inputHashes[out.Hash()] {
			return nil, ErrOutputEqualsInput
		}
	}

	popped := iterativeStackOrder(outputs)

	// Reverse: stack-pop order visits consumers before producers;
	// reversing yields a topological order (producers first).
	for i, j := 0, len(popped)-1; i < j; i, j = i+1, j-1 {
		popped[i], popped[j] = popped[j], popped[i]
	}

	nodes := make([]*graph.Node, 0, len(popped))
	posOf := make(map[int32]int, len(popped))
	for _, n := range popped {
		if _, seen := posOf[n.Hash()]; seen {
			continue
		}
		posOf[n.Hash()] = len(nodes)
		nodes = append(nodes, n)
	}

	if cfg.hoistExtCall {
		nodes, posOf = hoistExtCalls(nodes)
	}

	return &Schedule{Nodes: nodes, PosOf: posOf, Inputs: inputs, Outputs: outputs}, nil
}

// iterativeStackOrder pushes every root, then repeatedly pops a node,
// records it, and pushes its arguments — an explicit-stack traversal
// that never recurses. The recorded order has each node's consumers
// appearing before the node itself; Linearize reverses it to restore
// topological order.
func iterativeStackOrder(roots []*graph.Node) []*graph.Node {
	var stack []*graph.Node
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}

	var popped []*graph.Node
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		popped = append(popped, n)
		args := n.Args()
		for i := len(args) - 1; i >= 0; i-- {
			stack = append(stack, args[i])
		}
	}
	return popped
}

// hoistExtCalls moves (input, sin/cos) pairs that feed directly off an
// Input leaf to the front of the schedule, preserving the relative
// order of the hoisted pairs and of everything left behind.
func hoistExtCalls(nodes []*graph.Node) ([]*graph.Node, map[int32]int) {
	var hoisted, rest []*graph.Node
	hoistedLeaf := make(map[int32]bool)

	isHoistable := func(n *graph.Node) bool {
		if n.Kind() != graph.KindSin && n.Kind() != graph.KindCos {
			return false
		}
		args := n.Args()
		return len(args) == 1 && args[0].Kind() == graph.KindVariable
	}

	for _, n := range nodes {
		if isHoistable(n) {
			hoistedLeaf[n.Args()[0].Hash()] = true
		}
	}

	for _, n := range nodes {
		switch {
		case hoistedLeaf[n.Hash()] && n.Kind() == graph.KindVariable:
			hoisted = append(hoisted, n)
		case isHoistable(n):
			hoisted = append(hoisted, n)
		default:
			rest = append(rest, n)
		}
	}

	merged := append(hoisted, rest...)
	posOf := make(map[int32]int, len(merged))
	for i, n := range merged {
		posOf[n.Hash()] = i
	}
	return merged, posOf
}
