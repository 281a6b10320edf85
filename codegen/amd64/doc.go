// Package amd64 lowers a regalloc.Result into executable System V
// AMD64 machine code for a function of signature
//
//	func(in *float64, out *float64, extfns *unsafe.Pointer)
//
// in, out, and extfns arrive in rdi, rsi, rdx and are immediately moved
// into the callee-saved bases r12, r13, r14 so they survive the calls
// Sin/Cos steps make. Logical register index i (as assigned by
// regalloc) is always physical xmm[i] — the encoder never renumbers.
//
// Each TransitionSet is lowered in order: RawMove becomes vmovsd
// (register-register, or load/store against r12/r13/the spill area on
// the stack), ConstLoad becomes a movabs into rax followed by vmovq
// into the destination xmm, and OpResult becomes vaddsd/vsubsd/vmulsd
// (Add/Sub/Mul), vxorpd against a sign-bit mask (Negate), or a call
// through extfns[k] (Sin/Cos, and ExtCall of one argument).
//
// The only error Emit returns is ErrUnsupportedOp: for a transition or
// graph.Kind the encoder has no lowering for, and for an external call
// whose name is not in extNames (which includes the nameless OpResult
// regalloc produces for an ExtCall of several arguments).
package amd64
