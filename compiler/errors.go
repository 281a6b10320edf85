package compiler

import "errors"

// ErrUnknownBackend indicates JITCompile was given an empty backend
// name. Any non-empty name is passed to the shell as the compiler.
var ErrUnknownBackend = errors.New("compiler: unknown backend")
