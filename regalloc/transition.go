package regalloc

import "github.com/HiroIshida/tenkai/graph"

// Transition is one record in the allocator's log. The concrete types
// are RawMove, ConstLoad, and OpResult — a closed sum type, not an
// interface hierarchy meant for extension.
type Transition interface {
	isTransition()
}

// RawMove is pure data movement: no computation, no register
// allocation decision, just a relocation of an already-resident value.
type RawMove struct {
	Hash     int32
	Src, Dst Location
}

func (RawMove) isTransition() {}

// ConstLoad materializes an immediate constant into a register.
type ConstLoad struct {
	Hash  int32
	Value float64
	Dst   Location
}

func (ConstLoad) isTransition() {}

// OpResult performs the step's operation. OperandRegs lists the
// register indices holding the operands in declared order; for
// OpResult(Negate) the allocator appends the reserved scratch register
// as the final entry. External-call OpResults (Sin/Cos/ExtCall) carry
// no OperandRegs — the System V convention already has the operand in
// register 0 by the time this transition is emitted.
type OpResult struct {
	Hash        int32
	Kind        graph.Kind
	ExtName     string // "sin", "cos", or the ExtCall name for external calls; empty otherwise
	OperandRegs []int
	Dst         Location
}

func (OpResult) isTransition() {}

// TransitionSet is the ordered log produced by a single schedule step.
// Order matters: the encoder walks a TransitionSet front to back, and
// spills must precede reloads must precede the step's own op.
type TransitionSet []Transition
