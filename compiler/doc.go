// Package compiler is tenkai's top-level facade: Compile drives the
// native graph -> schedule -> liveness -> regalloc -> amd64 -> jitmem
// pipeline; JITCompile drives the textual backend instead, optionally
// dumping a disassembly of the result.
//
// Both entry points return a jitmem.CompiledFunc of signature
// func(in, out []float64, extfns []unsafe.Pointer). Compile never
// resolves Sin and Cos to a process-specific libm address at compile
// time — pure Go has no portable way to obtain one without cgo — so its
// code calls them through extfns exactly like an ExtCall. JITCompile's
// generated source calls sin/cos from <cmath> directly and reads only
// the ExtCall entries of extfns, at the same indices. ExternalNames
// reports, in the exact order Compile/JITCompile expect them in
// extfns, every external identifier ("sin", "cos", or a named ExtCall)
// the given graph actually calls.
package compiler
