package jitmem

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CompiledFunc is the signature every installed tenkai function
// presents to Go callers: bind input values, receive output values,
// supply the external function table Sin/Cos/ExtCall nodes call into.
type CompiledFunc func(in, out []float64, extfns []unsafe.Pointer)

// Region owns one executable memory mapping. The zero value is not
// usable; construct with Install.
type Region struct {
	once sync.Once
	mem  []byte
	err  error
}

// Install maps code into RW memory, copies it in, then remaps it RX.
// The mapping is never simultaneously writable and executable.
func Install(code []byte) (*Region, error) {
	if len(code) == 0 {
		return nil, ErrEmptyCode
	}

	mem, err := unix.Mmap(-1, 0, len(code),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMemoryMapFailed, err)
	}
	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return nil, fmt.Errorf("%w: %v", ErrMemoryMapFailed, err)
	}

	return &Region{mem: mem}, nil
}

// Func returns a callable Go value that invokes the installed code.
// Every call after Close returns ErrRegionClosed; Func itself may be
// called any number of times before then, returning an equally valid
// closure each time.
func (r *Region) Func() (CompiledFunc, error) {
	if len(r.mem) == 0 {
		return nil, ErrRegionClosed
	}

	return FuncAt(uintptr(unsafe.Pointer(&r.mem[0]))), nil
}

// FuncAt wraps a raw code address that already speaks the System V
// (in *float64, out *float64, extfns *unsafe.Pointer) convention into a
// callable CompiledFunc. Region.Func uses it for addresses inside its
// own mmap'd region; textgen's dlopen-based backend uses it directly
// for a symbol resolved out of a shared object jitmem never mapped
// itself, since both cases need the same ABI bridge: the installed
// code's prologue expects System V argument registers (RDI/RSI/RDX),
// but Go calls between Go functions via ABIInternal, which assigns
// arguments to a different register set, so a bare func-value cast over
// the address would hand the generated code garbage. callTrampoline
// bridges the two conventions explicitly.
func FuncAt(addr uintptr) CompiledFunc {
	return func(in, out []float64, extfns []unsafe.Pointer) {
		var inPtr, outPtr *float64
		if len(in) > 0 {
			inPtr = &in[0]
		}
		var extPtr *unsafe.Pointer
		if len(extfns) > 0 {
			extPtr = &extfns[0]
		}
		if len(out) > 0 {
			outPtr = &out[0]
		}
		callTrampoline(addr, inPtr, outPtr, extPtr)
	}
}

// Close unmaps the region. Safe to call more than once; only the first
// call performs the munmap and its result is what every call observes.
func (r *Region) Close() error {
	r.once.Do(func() {
		if len(r.mem) == 0 {
			return
		}
		r.err = unix.Munmap(r.mem)
		r.mem = nil
	})
	return r.err
}
