package compiler

import (
	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/schedule"
)

// ExternalNames reports, in first-appearance schedule order, every
// external identifier (Sin, Cos, or a named ExtCall) the graph calls.
// Compile and JITCompile bind extfns to this exact ordering; callers
// assemble their extfns slice by resolving each name to a function
// pointer in the order ExternalNames returns.
func ExternalNames(inputs, outputs []*graph.Node) ([]string, error) {
	sched, err := schedule.Linearize(inputs, outputs)
	if err != nil {
		return nil, err
	}
	return externalNamesInSchedule(sched), nil
}

func externalNamesInSchedule(sched *schedule.Schedule) []string {
	seen := make(map[string]bool)
	var names []string
	for _, node := range sched.Nodes {
		name := externalName(node)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func externalName(node *graph.Node) string {
	switch node.Kind() {
	case graph.KindSin, graph.KindCos:
		return node.Kind().String()
	case graph.KindExtCall:
		return node.ExtName()
	default:
		return ""
	}
}
