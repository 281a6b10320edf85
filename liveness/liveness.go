package liveness

import "github.com/HiroIshida/tenkai/schedule"

// Table holds, for each schedule step t, the hashes of values whose
// last occurrence as an argument is at step t.
type Table struct {
	// Disappear[t] is the set of hashes that die at step t, i.e. whose
	// register or stack slot the allocator may free once step t's
	// operands have been read.
	Disappear []map[int32]bool
}

// Analyze builds the last-use table for sched by scanning from the
// last step to the first, marking each argument hash "disappearing"
// the first time it is encountered walking backward (which is its
// last use walking forward).
func Analyze(sched *schedule.Schedule) *Table {
	n := len(sched.Nodes)
	disappear := make([]map[int32]bool, n)
	for i := range disappear {
		disappear[i] = make(map[int32]bool)
	}

	seen := make(map[int32]bool, n)
	for t := n - 1; t >= 0; t-- {
		for _, arg := range sched.Nodes[t].Args() {
			if !seen[arg.Hash()] {
				disappear[t][arg.Hash()] = true
				seen[arg.Hash()] = true
			}
		}
	}

	return &Table{Disappear: disappear}
}
