// Package jitmem installs a machine-code byte slice into executable
// memory and hands back a callable Go function value plus a scoped
// Close that guarantees the mapping is unmapped exactly once.
//
// Install mmaps an anonymous RW page, copies code into it, then
// mprotects it RX — code is never simultaneously writable and
// executable. The returned Region owns that mapping until Close.
//
// CompiledFunc's signature is func(in, out []float64, extfns
// []unsafe.Pointer). The machine code itself only ever sees three raw
// pointers in rdi/rsi/rdx (codegen/amd64's prologue moves them into
// r12/r13/r14); Func wraps that convention in a Go closure that
// extracts each slice's backing array pointer and never lets the
// generated code observe len/cap, so it is free to treat in/out as
// plain *float64/*float64 arrays sized by the compiler's own input and
// output counts.
//
// Go calls between Go functions via ABIInternal, which does not assign
// arguments to rdi/rsi/rdx, so the closure cannot simply cast the
// installed address to a Go func value and call it directly. Instead it
// calls through callTrampoline (trampoline_amd64.s), a hand-written
// assembly function that loads its arguments from the stack — Go's
// ABI0 convention, still used for functions without a Go body — into
// rdi/rsi/rdx and then executes a raw CALL to the installed code.
package jitmem
