package regalloc

import (
	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/liveness"
	"github.com/HiroIshida/tenkai/schedule"
)

// Result is the full output of Allocate: one TransitionSet per
// schedule step, in step order, plus the peak stack depth observed.
type Result struct {
	Steps        []TransitionSet
	StackDepth   int
	NumRegisters int
}

// Allocate walks sched step by step and assigns each node a register
// or stack slot, producing the RawMove/ConstLoad/OpResult log an
// encoder later lowers to machine code. The algorithm is linear scan:
// victims are chosen by highest idle age, one register is permanently
// reserved as scratch, and Sin/Cos calls follow the System V
// convention of caller-saving every other occupied register.
func Allocate(sched *schedule.Schedule, live *liveness.Table, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	inputHashes := make([]int32, len(sched.Inputs))
	for i, n := range sched.Inputs {
		inputHashes[i] = n.Hash()
	}
	st, err := newAllocatorState(cfg, inputHashes)
	if err != nil {
		return nil, err
	}

	outputIndex := make(map[int32][]int, len(sched.Outputs))
	for k, n := range sched.Outputs {
		outputIndex[n.Hash()] = append(outputIndex[n.Hash()], k)
	}

	steps := make([]TransitionSet, len(sched.Nodes))
	for t, node := range sched.Nodes {
		st.beginStep()

		if err := allocateStep(st, live, t, node); err != nil {
			return nil, err
		}
		mirrorOutputs(st, node, outputIndex)

		freeDisappearing(st, live, t)
		st.ageRegisters()

		steps[t] = st.current
	}

	return &Result{
		Steps:        steps,
		StackDepth:   st.stackCapacityUsed(),
		NumRegisters: cfg.NumRegisters,
	}, nil
}

// allocateStep handles the three shapes a schedule step can take:
// leaves (Variable/Zero/One/Constant), internal binary/unary ops, and
// external calls (Sin/Cos, and ExtCall of one argument). An ExtCall of
// several arguments goes through allocateOp and carries no ExtName, so
// the encoder rejects it with ErrUnsupportedOp.
func allocateStep(st *allocatorState, live *liveness.Table, t int, node *graph.Node) error {
	switch node.Kind() {
	case graph.KindVariable:
		// Already resident in its input slot; reloadOperand brings it
		// into a register only when a later step actually consumes it,
		// so a bare leaf step does nothing but register the location,
		// which newAllocatorState already did up front. Nothing to emit.
		return nil

	case graph.KindZero, graph.KindOne, graph.KindConstant:
		return allocateConstant(st, node)

	case graph.KindSin, graph.KindCos:
		return allocateExternalCall(st, live, t, node)

	case graph.KindExtCall:
		if len(node.Args()) == 1 {
			return allocateExternalCall(st, live, t, node)
		}
		return allocateOp(st, live, t, node)

	default:
		return allocateOp(st, live, t, node)
	}
}

func allocateConstant(st *allocatorState, node *graph.Node) error {
	reg, err := st.acquireRegister(nil)
	if err != nil {
		return err
	}
	dst := Location{Kind: LocRegister, Index: reg}
	st.regs[reg] = regSlot{occupied: true, hash: node.Hash(), age: 0}
	st.locationOf[node.Hash()] = dst
	st.touch(reg)

	st.emit(ConstLoad{Hash: node.Hash(), Value: node.Value(), Dst: dst})
	return nil
}

// allocateOp handles Add/Sub/Mul/Negate: reload every operand into a
// register in declared order, free any operand that dies at this exact
// step, pick a destination register (the allocator lets that
// destination reuse an operand's just-freed register, exactly as the
// encoder's two-operand instructions allow), and emit the OpResult.
// Freeing before choosing the destination — rather than after, as a
// single pass over every step would — matters here specifically: it is
// what lets a dying operand's register host its own result instead of
// forcing an unrelated victim to spill.
func allocateOp(st *allocatorState, live *liveness.Table, t int, node *graph.Node) error {
	args := node.Args()
	exclude := make(map[int]bool, len(args))
	operandRegs := make([]int, len(args))

	for i, arg := range args {
		reg, err := st.reloadOperand(arg.Hash(), exclude)
		if err != nil {
			return err
		}
		operandRegs[i] = reg
		exclude[reg] = true
	}

	if node.Kind() == graph.KindNegate {
		operandRegs = append(operandRegs, st.scratch)
	}

	// The register of an operand dying at this step is the preferred
	// destination; otherwise any free register is taken.
	dstReg := -1
	for i, arg := range args {
		if t < len(live.Disappear) && live.Disappear[t][arg.Hash()] {
			dstReg = operandRegs[i]
			break
		}
	}

	freeDisappearing(st, live, t)

	if dstReg < 0 {
		reg, err := st.acquireRegister(nil)
		if err != nil {
			return err
		}
		dstReg = reg
	}
	dst := Location{Kind: LocRegister, Index: dstReg}
	st.regs[dstReg] = regSlot{occupied: true, hash: node.Hash(), age: 0}
	st.locationOf[node.Hash()] = dst
	st.touch(dstReg)

	st.emit(OpResult{
		Hash:        node.Hash(),
		Kind:        node.Kind(),
		OperandRegs: operandRegs,
		Dst:         dst,
	})
	return nil
}

// allocateExternalCall implements the System V scalar call sequence:
// the operand must land in register 0, where the result also returns,
// so the operand is released there if it dies at this step or saved to
// the stack if a later step still reads it; every other occupied
// register is caller-saved to the stack before the call.
func allocateExternalCall(st *allocatorState, live *liveness.Table, t int, node *graph.Node) error {
	arg := node.Args()[0]
	if err := st.prepareOnRegister(arg.Hash(), 0); err != nil {
		return err
	}
	if t < len(live.Disappear) && live.Disappear[t][arg.Hash()] {
		st.freeHash(arg.Hash())
	} else if err := st.spillRegister(0); err != nil {
		return err
	}

	for i := 0; i < st.numUsable; i++ {
		if i == 0 {
			continue
		}
		if st.regs[i].occupied {
			if err := st.spillRegister(i); err != nil {
				return err
			}
		}
	}

	dst := Location{Kind: LocRegister, Index: 0}
	st.regs[0] = regSlot{occupied: true, hash: node.Hash(), age: 0}
	st.locationOf[node.Hash()] = dst
	st.touch(0)

	extName := node.ExtName()
	if extName == "" {
		extName = node.Kind().String()
	}
	st.emit(OpResult{
		Hash:    node.Hash(),
		Kind:    node.Kind(),
		ExtName: extName,
		Dst:     dst,
	})
	return nil
}

// mirrorOutputs copies node's value to every output slot it fills.
// This applies unconditionally after leaf, call, and op steps alike:
// any schedule step may coincide with a requested output.
func mirrorOutputs(st *allocatorState, node *graph.Node, outputIndex map[int32][]int) {
	ks, ok := outputIndex[node.Hash()]
	if !ok {
		return
	}
	loc, ok := st.locationOf[node.Hash()]
	if !ok {
		return
	}
	for _, k := range ks {
		st.emit(RawMove{
			Hash: node.Hash(),
			Src:  loc,
			Dst:  Location{Kind: LocOutput, Index: k},
		})
	}
}

// freeDisappearing releases, without emitting any code, every hash
// the liveness table marks as dead after step t.
func freeDisappearing(st *allocatorState, live *liveness.Table, t int) {
	if t >= len(live.Disappear) {
		return
	}
	for hash := range live.Disappear[t] {
		st.freeHash(hash)
	}
}
