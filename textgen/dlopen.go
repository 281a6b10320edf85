package textgen

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// sharedObject is a dlopen'd handle kept alive for the lifetime of the
// CompiledFunc closure built on top of it; nothing closes it, since the
// process has no signal that the function is no longer needed.
type sharedObject struct {
	handle unsafe.Pointer
}

// dlOpen loads path with RTLD_NOW, resolving every symbol immediately
// so a missing external reference fails here rather than mid-call.
func dlOpen(path string) (*sharedObject, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	handle := C.dlopen(cPath, C.RTLD_NOW)
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", ErrSharedObjectLoadFailed, C.GoString(C.dlerror()))
	}
	return &sharedObject{handle: handle}, nil
}

// sym resolves name to a function pointer within so.
func (so *sharedObject) sym(name string) (uintptr, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	addr := C.dlsym(so.handle, cName)
	if addr == nil {
		return 0, fmt.Errorf("%w: %s: %s", ErrSymbolNotFound, name, C.GoString(C.dlerror()))
	}
	return uintptr(addr), nil
}
