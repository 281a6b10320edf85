package dot

import (
	"fmt"
	"io"

	"github.com/HiroIshida/tenkai/graph"
)

// Export writes a Graphviz DOT rendering of every node reachable from
// outputs to w. Nodes bound by inputs are pinned into a rank=source
// subgraph and outputs into rank=sink; every other node is labeled by
// its Kind (plus its value for Constant, its name for ExtCall).
//
// Constant and Zero/One leaves are rendered as one distinct node per
// use rather than merged by Hash — unlike the scheduler's CSE, the
// diagram favors readability (a literal drawn once per occurrence
// reads clearer than one node with many converging edges) over
// showing the dedup the scheduler actually performs.
func Export(w io.Writer, inputs, outputs []*graph.Node) error {
	nodes := graph.Reachable(outputs...)

	inputIdx := make(map[int32]int, len(inputs))
	for i, n := range inputs {
		inputIdx[n.Hash()] = i
	}
	outputIdx := make(map[int32][]int, len(outputs))
	for k, n := range outputs {
		outputIdx[n.Hash()] = append(outputIdx[n.Hash()], k)
	}

	id := make(map[int32]string, len(nodes))
	for i, n := range nodes {
		id[n.Hash()] = fmt.Sprintf("n%d", i)
	}

	if err := fprintf(w, "digraph tenkai {\n  rankdir=BT;\n"); err != nil {
		return err
	}

	for _, n := range nodes {
		if isLeafLiteral(n) {
			continue // drawn per-use at each caller edge instead.
		}
		if err := fprintf(w, "  %s [label=%q];\n", id[n.Hash()], nodeLabel(n)); err != nil {
			return err
		}
	}

	literalCounter := 0
	for _, n := range nodes {
		for argPos, arg := range n.Args() {
			if isLeafLiteral(arg) {
				literalCounter++
				litID := fmt.Sprintf("lit%d", literalCounter)
				if err := fprintf(w, "  %s [label=%q, shape=box];\n", litID, nodeLabel(arg)); err != nil {
					return err
				}
				if err := fprintf(w, "  %s -> %s [label=%d];\n", litID, id[n.Hash()], argPos); err != nil {
					return err
				}
				continue
			}
			if err := fprintf(w, "  %s -> %s [label=%d];\n", id[arg.Hash()], id[n.Hash()], argPos); err != nil {
				return err
			}
		}
	}

	if err := writeRankSubgraph(w, "source", inputs, id); err != nil {
		return err
	}
	if err := writeRankSubgraph(w, "sink", outputs, id); err != nil {
		return err
	}

	return fprintf(w, "}\n")
}

func isLeafLiteral(n *graph.Node) bool {
	switch n.Kind() {
	case graph.KindZero, graph.KindOne, graph.KindConstant:
		return true
	default:
		return false
	}
}

func nodeLabel(n *graph.Node) string {
	switch n.Kind() {
	case graph.KindVariable:
		return "var"
	case graph.KindZero:
		return "0"
	case graph.KindOne:
		return "1"
	case graph.KindConstant:
		return fmt.Sprintf("%v", n.Value())
	case graph.KindExtCall:
		return n.ExtName()
	default:
		return n.Kind().String()
	}
}

func writeRankSubgraph(w io.Writer, rank string, nodes []*graph.Node, id map[int32]string) error {
	if len(nodes) == 0 {
		return nil
	}
	if err := fprintf(w, "  { rank=%s;", rank); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := fprintf(w, " %s;", id[n.Hash()]); err != nil {
			return err
		}
	}
	return fprintf(w, " }\n")
}

func fprintf(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
