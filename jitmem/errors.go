package jitmem

import "errors"

var (
	// ErrEmptyCode indicates Install was called with no machine code.
	ErrEmptyCode = errors.New("jitmem: empty code")

	// ErrMemoryMapFailed wraps a failed mmap/mprotect syscall.
	ErrMemoryMapFailed = errors.New("jitmem: memory map failed")

	// ErrRegionClosed indicates Func was called after the Region's
	// mapping was already released. Close itself is idempotent.
	ErrRegionClosed = errors.New("jitmem: region already closed")
)
