// Package textgen is tenkai's second, textual backend: instead of
// encoding machine code directly, it emits a C++ translation unit, shells
// out to a system compiler, and dlopens the resulting shared object via
// cgo (dlopen/dlsym), not Go's plugin package — plugin.Open only loads
// shared objects built by `go build -buildmode=plugin` with the exact
// host toolchain, and rejects anything a C++ compiler produces. The
// resolved symbol is handed to jitmem.FuncAt, the same System V call
// bridge the native path uses, so textgen runs only on amd64 like the
// native path. textgen exists to cross-check the amd64 encoder against
// an independently-optimized code path.
//
// This package is specified at interface level: Backend.Compile is
// fully implemented (it is small and mechanical) but is not the
// subject of the deep per-instruction testing codegen/amd64 and
// regalloc receive.
package textgen
