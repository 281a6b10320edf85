package regalloc

import "errors"

var (
	// ErrStackOverflow indicates more values were simultaneously live
	// than the configured stack capacity allows. It is also returned when
	// no register can be freed because every usable register holds an
	// operand of the current step, e.g. a two-operand op with only one
	// usable register (WithRegisters(2)).
	ErrStackOverflow = errors.New("regalloc: out of stack capacity")

	// ErrMissingLocation indicates the allocator needed the current
	// residence of a hash that location_of does not have — a
	// scheduler/liveness bug, not a recoverable condition.
	ErrMissingLocation = errors.New("regalloc: missing location for hash")

	// ErrTooFewRegisters indicates fewer than 2 registers were
	// requested; the allocator always needs at least one usable
	// register plus the reserved scratch register.
	ErrTooFewRegisters = errors.New("regalloc: need at least 2 registers")
)
