package amd64

import (
	"math"

	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/regalloc"
)

func floatBits(v float64) uint64 { return math.Float64bits(v) }

// Encoder assembles a regalloc.Result into a single function body.
// Zero value is ready to use.
type Encoder struct {
	buf []byte
}

// signBitMask is -0.0's bit pattern: XORing it into a double flips the
// sign bit and leaves the exponent/mantissa untouched.
const signBitMask uint64 = 1 << 63

// Emit lowers result into machine code for
//
//	func(in *float64, out *float64, extfns *unsafe.Pointer)
//
// extNames lists the external function names the compiled body may
// call, in the exact order their corresponding unsafe.Pointer values
// will be laid out in the extfns array the caller passes at call time.
func (e *Encoder) Emit(result *regalloc.Result, extNames []string) ([]byte, error) {
	extIndex := make(map[string]int, len(extNames))
	for i, name := range extNames {
		extIndex[name] = i
	}

	e.buf = e.buf[:0]
	e.emitPrologue(result.StackDepth)

	for _, step := range result.Steps {
		for _, tr := range step {
			if err := e.emitTransition(tr, extIndex); err != nil {
				return nil, err
			}
		}
	}

	e.emitEpilogue(result.StackDepth)
	return append([]byte(nil), e.buf...), nil
}

func (e *Encoder) emit(bs ...byte) { e.buf = append(e.buf, bs...) }

func (e *Encoder) emitPrologue(stackDepth int) {
	e.emit(0x41, 0x54) // push r12
	e.emit(0x41, 0x55) // push r13
	e.emit(0x41, 0x56) // push r14

	e.emit(0x49, 0x89, modrm(3, gpRDI, gpR12&7)) // mov r12, rdi
	e.emit(0x49, 0x89, modrm(3, gpRSI, gpR13&7)) // mov r13, rsi
	e.emit(0x49, 0x89, modrm(3, gpRDX, gpR14&7)) // mov r14, rdx

	if n := stackDepth * 8; n > 0 {
		e.emitSubRSP(n)
	}
}

func (e *Encoder) emitEpilogue(stackDepth int) {
	if n := stackDepth * 8; n > 0 {
		e.emitAddRSP(n)
	}
	e.emit(0x41, 0x5E) // pop r14
	e.emit(0x41, 0x5D) // pop r13
	e.emit(0x41, 0x5C) // pop r12
	e.emit(0xC3)        // ret
}

func (e *Encoder) emitSubRSP(n int) {
	if n < 128 {
		e.emit(0x48, 0x83, 0xEC, byte(n))
		return
	}
	e.emit(0x48, 0x81, 0xEC)
	e.emit(u32le(uint32(n))...)
}

func (e *Encoder) emitAddRSP(n int) {
	if n < 128 {
		e.emit(0x48, 0x83, 0xC4, byte(n))
		return
	}
	e.emit(0x48, 0x81, 0xC4)
	e.emit(u32le(uint32(n))...)
}

func (e *Encoder) emitTransition(tr regalloc.Transition, extIndex map[string]int) error {
	switch t := tr.(type) {
	case regalloc.RawMove:
		return e.emitRawMove(t)
	case regalloc.ConstLoad:
		e.emitConstLoad(t)
		return nil
	case regalloc.OpResult:
		return e.emitOpResult(t, extIndex)
	default:
		return ErrUnsupportedOp
	}
}

// emitRawMove lowers a single data relocation. Register<->Register is
// a plain vmovsd; Register<->Stack hits the spill area the prologue
// reserves, slot s at [rsp + 8*s]; Input/Output ends touch r12/r13 (the
// base pointers stashed by the prologue).
func (e *Encoder) emitRawMove(m regalloc.RawMove) error {
	switch {
	case m.Src.Kind == regalloc.LocRegister && m.Dst.Kind == regalloc.LocRegister:
		e.emitVmovsdRegReg(m.Dst.Index, m.Src.Index)
	case m.Src.Kind == regalloc.LocRegister && m.Dst.Kind == regalloc.LocStack:
		e.emitVmovsdStoreRSP(m.Src.Index, m.Dst.Index*8)
	case m.Src.Kind == regalloc.LocStack && m.Dst.Kind == regalloc.LocRegister:
		e.emitVmovsdLoadRSP(m.Dst.Index, m.Src.Index*8)
	case m.Src.Kind == regalloc.LocInput && m.Dst.Kind == regalloc.LocRegister:
		e.emitVmovsdLoad(m.Dst.Index, gpR12, m.Src.Index*8)
	case m.Src.Kind == regalloc.LocRegister && m.Dst.Kind == regalloc.LocOutput:
		e.emitVmovsdStore(m.Src.Index, gpR13, m.Dst.Index*8)
	default:
		return ErrUnsupportedOp
	}
	return nil
}

func (e *Encoder) emitConstLoad(c regalloc.ConstLoad) {
	bits := floatBits(c.Value)
	e.emit(0x48, 0xB8) // movabs rax, imm64
	e.emit(u64le(bits)...)
	e.emitVmovqXmmFromGPR(c.Dst.Index, gpRAX)
}

func (e *Encoder) emitOpResult(op regalloc.OpResult, extIndex map[string]int) error {
	switch op.Kind {
	case graph.KindAdd:
		e.emitSSE3(0x58, op.Dst.Index, op.OperandRegs[0], op.OperandRegs[1])
	case graph.KindSub:
		e.emitSSE3(0x5C, op.Dst.Index, op.OperandRegs[0], op.OperandRegs[1])
	case graph.KindMul:
		e.emitSSE3(0x59, op.Dst.Index, op.OperandRegs[0], op.OperandRegs[1])
	case graph.KindNegate:
		e.emitNegate(op.Dst.Index, op.OperandRegs[0], op.OperandRegs[1])
	case graph.KindSin, graph.KindCos, graph.KindExtCall:
		return e.emitExternalCall(op, extIndex)
	default:
		return ErrUnsupportedOp
	}
	return nil
}

// emitNegate materializes the IEEE-754 sign-bit mask into the scratch
// register, then vxorpd's it against the operand into the destination.
func (e *Encoder) emitNegate(dst, src, scratch int) {
	e.emit(0x48, 0xB8) // movabs rax, signBitMask
	e.emit(u64le(signBitMask)...)
	e.emitVmovqXmmFromGPR(scratch, gpRAX)
	e.emitVxorpd(dst, src, scratch)
}

// emitExternalCall implements the System V scalar call sequence: by
// the time regalloc emits this OpResult, the operand already sits in
// xmm0 (register index 0) and every other live register has been
// spilled — the encoder only needs to fetch the function pointer and
// call it. The result returns in xmm0, matching op.Dst.
func (e *Encoder) emitExternalCall(op regalloc.OpResult, extIndex map[string]int) error {
	idx, ok := extIndex[op.ExtName]
	if !ok {
		return ErrUnsupportedOp
	}
	// mov rax, [r14 + idx*8]
	e.emit(0x49, 0x8B)
	e.emitMemOperand(gpRAX, gpR14, idx*8)
	e.emit(0xFF, 0xD0) // call rax
	return nil
}

// --- mechanical SSE/AVX emitters ---

func (e *Encoder) emitVmovsdRegReg(dst, src int) {
	e.emit(vex3(reg8(dst), false, reg8(src), 1, false, 0, 0, 3)...)
	e.emit(0x10, modrm(3, dst&7, src&7))
}

func (e *Encoder) emitVmovsdLoad(dst, baseReg, disp int) {
	e.emit(vex3(reg8(dst), false, reg8(baseReg), 1, false, 0, 0, 3)...)
	e.emit(0x10)
	e.emitMemOperand(dst, baseReg, disp)
}

func (e *Encoder) emitVmovsdStore(src, baseReg, disp int) {
	e.emit(vex3(reg8(src), false, reg8(baseReg), 1, false, 0, 0, 3)...)
	e.emit(0x11)
	e.emitMemOperand(src, baseReg, disp)
}

func (e *Encoder) emitVmovsdLoadRSP(dst, disp int) { e.emitVmovsdLoad(dst, gpRSP, disp) }
func (e *Encoder) emitVmovsdStoreRSP(src, disp int) { e.emitVmovsdStore(src, gpRSP, disp) }

// emitSSE3 lowers the vaddsd/vsubsd/vmulsd 3-operand shape: dst = src1 <op> src2.
func (e *Encoder) emitSSE3(opcode byte, dst, src1, src2 int) {
	e.emit(vex3(reg8(dst), false, reg8(src2), 1, false, byte(src1&0xF), 0, 3)...)
	e.emit(opcode, modrm(3, dst&7, src2&7))
}

func (e *Encoder) emitVxorpd(dst, src1, src2 int) {
	e.emit(vex3(reg8(dst), false, reg8(src2), 1, false, byte(src1&0xF), 0, 1)...)
	e.emit(0x57, modrm(3, dst&7, src2&7))
}

func (e *Encoder) emitVmovqXmmFromGPR(dstXmm, srcGPR int) {
	e.emit(vex3(reg8(dstXmm), false, reg8(srcGPR), 1, true, 0, 0, 1)...)
	e.emit(0x6E, modrm(3, dstXmm&7, srcGPR&7))
}

// emitMemOperand appends a ModRM[.reg=regField] + optional SIB +
// disp32 memory operand addressing [baseReg + disp]. baseReg encodings
// whose low 3 bits are 4 (rsp, r12) require an explicit SIB byte with
// no index.
func (e *Encoder) emitMemOperand(regField, baseReg, disp int) {
	rm := baseReg & 7
	e.emit(modrm(2, regField&7, rm))
	if rm == 4 {
		e.emit(sib(0, 4, rm))
	}
	e.emit(u32le(uint32(int32(disp)))...)
}
