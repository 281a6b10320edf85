//go:build amd64

package jitmem

import "unsafe"

// callTrampoline jumps to the System V function at fn, passing in, out,
// and extfns in RDI/RSI/RDX exactly as codegen/amd64's prologue expects.
// Implemented in trampoline_amd64.s: a hand-written assembly function
// uses Go's stack-based ABI0 calling convention (FP-relative arguments),
// not the register-based ABIInternal convention Go uses to call other Go
// functions, so this is the one safe place to bridge into raw machine
// code installed by Region.Func — the CALL instruction itself carries no
// Go calling-convention baggage.
//
//go:noescape
func callTrampoline(fn uintptr, in, out *float64, extfns *unsafe.Pointer)
