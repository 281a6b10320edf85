package textgen

import "errors"

var (
	// ErrEmptyCompilerName indicates a Backend was used with no
	// CompilerName configured.
	ErrEmptyCompilerName = errors.New("textgen: empty compiler name")

	// ErrExternalCompileFailed wraps a non-zero exit from the
	// configured compiler; the wrapped error carries its stderr.
	ErrExternalCompileFailed = errors.New("textgen: external compile failed")

	// ErrSharedObjectLoadFailed wraps a dlopen failure on the compiled
	// shared object.
	ErrSharedObjectLoadFailed = errors.New("textgen: shared object load failed")

	// ErrSymbolNotFound indicates the compiled shared object did not
	// export the expected entry point.
	ErrSymbolNotFound = errors.New("textgen: compiled symbol not found")

	// ErrOverlappingIO indicates the same node was named as both an
	// input and an output. The emitted input[i] is read-only and
	// output[k] is write-only, so a node cannot be both without one of
	// the two assignments silently clobbering the other's meaning.
	ErrOverlappingIO = errors.New("textgen: node is both an input and an output")
)
