package compiler

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/arch/x86/x86asm"

	amd64 "github.com/HiroIshida/tenkai/codegen/amd64"
	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/jitmem"
	"github.com/HiroIshida/tenkai/liveness"
	"github.com/HiroIshida/tenkai/regalloc"
	"github.com/HiroIshida/tenkai/schedule"
	"github.com/HiroIshida/tenkai/textgen"
)

// Compile drives the native pipeline: linearize, analyze liveness,
// allocate registers, encode amd64, and install the result as
// executable memory. The caller owns the returned *jitmem.Region and
// must Close it when the compiled function is no longer needed.
func Compile(inputs, outputs []*graph.Node, opts ...regalloc.Option) (jitmem.CompiledFunc, *jitmem.Region, error) {
	sched, err := schedule.Linearize(inputs, outputs)
	if err != nil {
		return nil, nil, err
	}
	live := liveness.Analyze(sched)

	result, err := regalloc.Allocate(sched, live, opts...)
	if err != nil {
		return nil, nil, err
	}

	extNames := externalNamesInSchedule(sched)
	var enc amd64.Encoder
	code, err := enc.Emit(result, extNames)
	if err != nil {
		return nil, nil, err
	}

	region, err := jitmem.Install(code)
	if err != nil {
		return nil, nil, err
	}
	fn, err := region.Func()
	if err != nil {
		_ = region.Close()
		return nil, nil, err
	}
	return fn, region, nil
}

// JITCompile drives the textual backend: shell out to backendName to
// build a shared object from a generated C++ translation unit, then
// load it with dlopen through cgo. When disas is true, the produced
// symbol's leading bytes are disassembled to stdout as a diagnostic —
// a side effect that never gates success or failure.
func JITCompile(inputs, outputs []*graph.Node, backendName string, disas bool) (jitmem.CompiledFunc, error) {
	if backendName == "" {
		return nil, ErrUnknownBackend
	}

	extNames, err := ExternalNames(inputs, outputs)
	if err != nil {
		return nil, err
	}

	backend := &textgen.Backend{CompilerName: backendName}
	fn, err := backend.Compile(inputs, outputs, extNames)
	if err != nil {
		return nil, err
	}

	if disas {
		dumpDisassembly(fn)
	}
	return fn, nil
}

// dumpDisassembly decodes a fixed-size window of instructions starting
// at fn's entry point and writes them to stdout. It never fails the
// compile: a decode error simply truncates the dump early. Best
// effort only — for JITCompile's textual path this disassembles the
// Go wrapper closure's own entry, not the compiler-produced native
// code it calls into, since a Go func value carries no portable way
// to recover the raw C function pointer it closes over. Diagnostic
// use only; writes to stdout and never affects the returned function.
func dumpDisassembly(fn jitmem.CompiledFunc) {
	const window = 256
	addr := uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&fn)))
	code := unsafe.Slice((*byte)(unsafe.Pointer(addr)), window)

	for off := 0; off < len(code); {
		inst, err := x86asm.Decode(code[off:], 64)
		if err != nil {
			break
		}
		fmt.Fprintf(os.Stdout, "%04x: %s\n", off, x86asm.GNUSyntax(inst, uint64(addr)+uint64(off), nil))
		off += inst.Len
		if inst.Op == x86asm.RET {
			break
		}
	}
}
