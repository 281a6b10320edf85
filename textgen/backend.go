package textgen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/HiroIshida/tenkai/graph"
	"github.com/HiroIshida/tenkai/jitmem"
	"github.com/HiroIshida/tenkai/schedule"
)

// Backend compiles expression graphs through a system C++ compiler
// instead of tenkai's own amd64 encoder, as an independent
// cross-check of the machine-code path.
type Backend struct {
	// CompilerName is the executable invoked to build the shared
	// object, e.g. "g++" or "clang++".
	CompilerName string

	// ExtraFlags are appended after the mandatory -O3 -shared -fPIC
	// -x c++ flags, e.g. for custom include paths.
	ExtraFlags []string
}

func checkOverlappingIO(inputs, outputs []*graph.Node) error {
	inputHashes := make(map[int32]bool, len(inputs))
	for _, n := range inputs {
		inputHashes[n.Hash()] = true
	}
	for _, n := range outputs {
		if inputHashes[n.Hash()] {
			return ErrOverlappingIO
		}
	}
	return nil
}

// Compile emits a translation unit for (inputs, outputs), builds it
// into a shared object, loads it, and returns a CompiledFunc bound to
// the produced symbol. extNames must list, in order, the external
// function names any ExtCall node in the graph refers to.
func (b *Backend) Compile(inputs, outputs []*graph.Node, extNames []string) (jitmem.CompiledFunc, error) {
	if b.CompilerName == "" {
		return nil, ErrEmptyCompilerName
	}
	if err := checkOverlappingIO(inputs, outputs); err != nil {
		return nil, err
	}

	sched, err := schedule.Linearize(inputs, outputs)
	if err != nil {
		return nil, err
	}

	const funcName = "tenkai_compiled"
	source := generateSource(funcName, sched, extNames)

	srcFile, err := os.CreateTemp("", "tenkai-*.cpp")
	if err != nil {
		return nil, fmt.Errorf("textgen: create temp source: %w", err)
	}
	defer os.Remove(srcFile.Name())
	defer srcFile.Close()

	if _, err := srcFile.WriteString(source); err != nil {
		return nil, fmt.Errorf("textgen: write temp source: %w", err)
	}
	if err := srcFile.Close(); err != nil {
		return nil, fmt.Errorf("textgen: close temp source: %w", err)
	}

	soPath := srcFile.Name() + ".so"
	defer os.Remove(soPath)

	args := append([]string{"-O3", "-shared", "-fPIC", "-x", "c++",
		srcFile.Name(), "-o", soPath}, b.ExtraFlags...)
	cmd := exec.Command(b.CompilerName, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrExternalCompileFailed, err, output)
	}

	absSO, err := filepath.Abs(soPath)
	if err != nil {
		return nil, fmt.Errorf("textgen: resolve shared object path: %w", err)
	}
	so, err := dlOpen(absSO)
	if err != nil {
		return nil, err
	}
	addr, err := so.sym(funcName)
	if err != nil {
		return nil, err
	}

	// The g++/clang++-built symbol is an ordinary System V function, the
	// same convention codegen/amd64 targets, so the same trampoline-based
	// bridge jitmem uses for natively JIT'd code applies here unchanged.
	return jitmem.FuncAt(addr), nil
}
