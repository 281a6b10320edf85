package schedule

import "errors"

var (
	// ErrDuplicateInput indicates the inputs slice names the same value
	// (by structural hash) more than once.
	ErrDuplicateInput = errors.New("schedule: duplicate input")

	// ErrOutputEqualsInput indicates an output node is also present in
	// the inputs slice, which the allocator cannot place unambiguously.
	ErrOutputEqualsInput = errors.New("schedule: output equals input")
)
