package textgen

import (
	"fmt"
	"strings"

	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/schedule"
)

// generateSource renders sched as one extern "C" translation unit.
// Every schedule step becomes a named temporary (t<hash>); Variable
// steps that are bound inputs become input[i] instead of a temporary,
// and any step whose hash matches an output is additionally assigned
// to output[k]. External calls index into an extfns array of function
// pointers, in the order extNames lists them.
func generateSource(funcName string, sched *schedule.Schedule, extNames []string) string {
	inputPos := make(map[int32]int, len(sched.Inputs))
	for i, n := range sched.Inputs {
		inputPos[n.Hash()] = i
	}
	outputPos := make(map[int32][]int, len(sched.Outputs))
	for k, n := range sched.Outputs {
		outputPos[n.Hash()] = append(outputPos[n.Hash()], k)
	}
	extIndex := make(map[string]int, len(extNames))
	for i, name := range extNames {
		extIndex[name] = i
	}

	var b strings.Builder
	b.WriteString("#include <cmath>\n\n")
	fmt.Fprintf(&b, "extern \"C\" void %s(double* input, double* output, void** extfns) {\n", funcName)

	for _, node := range sched.Nodes {
		name := temporaryName(node, inputPos)
		expr := nodeExpr(node, inputPos, extIndex)

		if _, isInput := inputPos[node.Hash()]; isInput {
			// input[i] is already bound by the caller; nothing to emit.
		} else {
			fmt.Fprintf(&b, "  double %s = %s;\n", name, expr)
		}

		for _, k := range outputPos[node.Hash()] {
			fmt.Fprintf(&b, "  output[%d] = %s;\n", k, name)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func temporaryName(node *graph.Node, inputPos map[int32]int) string {
	if i, ok := inputPos[node.Hash()]; ok {
		return fmt.Sprintf("input[%d]", i)
	}
	return fmt.Sprintf("t%d", uint32(node.Hash()))
}

func operandName(arg *graph.Node, inputPos map[int32]int) string {
	return temporaryName(arg, inputPos)
}

func nodeExpr(node *graph.Node, inputPos map[int32]int, extIndex map[string]int) string {
	args := node.Args()
	switch node.Kind() {
	case graph.KindVariable:
		return temporaryName(node, inputPos)
	case graph.KindZero:
		return "0.0"
	case graph.KindOne:
		return "1.0"
	case graph.KindConstant:
		return fmt.Sprintf("%v", node.Value())
	case graph.KindAdd:
		return fmt.Sprintf("%s + %s", operandName(args[0], inputPos), operandName(args[1], inputPos))
	case graph.KindSub:
		return fmt.Sprintf("%s - %s", operandName(args[0], inputPos), operandName(args[1], inputPos))
	case graph.KindMul:
		return fmt.Sprintf("%s * %s", operandName(args[0], inputPos), operandName(args[1], inputPos))
	case graph.KindNegate:
		return fmt.Sprintf("-%s", operandName(args[0], inputPos))
	case graph.KindSin:
		return fmt.Sprintf("sin(%s)", operandName(args[0], inputPos))
	case graph.KindCos:
		return fmt.Sprintf("cos(%s)", operandName(args[0], inputPos))
	case graph.KindExtCall:
		return externalCallExpr(node, inputPos, extIndex)
	default:
		return "0.0 /* unreachable */"
	}
}

// externalCallExpr casts extfns[idx] to a function pointer of the
// right arity and calls it, e.g. ((double(*)(double,double))extfns[2])(a, b).
func externalCallExpr(node *graph.Node, inputPos map[int32]int, extIndex map[string]int) string {
	args := node.Args()
	idx := extIndex[node.ExtName()]

	params := make([]string, len(args))
	operands := make([]string, len(args))
	for i, a := range args {
		params[i] = "double"
		operands[i] = operandName(a, inputPos)
	}

	return fmt.Sprintf("((double(*)(%s))extfns[%d])(%s)",
		strings.Join(params, ","), idx, strings.Join(operands, ", "))
}
