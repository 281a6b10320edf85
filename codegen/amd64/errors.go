package amd64

import "errors"

// ErrUnsupportedOp indicates a transition the encoder has no lowering
// for reached Emit, or an external call whose name is missing from the
// extNames passed to Emit.
var ErrUnsupportedOp = errors.New("amd64: unsupported operation")
