// Package regalloc assigns every value produced by a schedule.Schedule
// to a register or a stack slot, producing the ordered transition log
// the encoder lowers into machine code.
//
// Allocate runs a single forward linear-scan pass over the schedule.
// A constant leaf step emits a ConstLoad; a Variable leaf step emits
// nothing, and the input is moved into a register (RawMove from its
// input slot) by the first step that reads it. An op step brings every
// operand into a register (from its input slot or the stack), frees
// operands whose last use is this step (per the liveness table),
// allocates a destination register — preferring one freed this same
// step — and emits the step's OpResult. Sin/Cos steps instead follow
// the System V calling convention: the operand is moved into register
// 0 (and saved to the stack if a later step still reads it), every
// other occupied register is spilled across the call, and the result
// lands back in register 0.
//
// One register (index NumRegisters-1) is permanently reserved as
// scratch space for the encoder — never assigned to a live value,
// only handed to OpResult(Negate) so the encoder can materialize the
// IEEE-754 sign-bit mask it needs for vxorpd.
//
// This package is ported directly from the allocator's explicit state
// machine (reg_occupant/reg_age/stack_occupant/location_of) rather
// than derived from prose alone — see DESIGN.md.
//
// Errors:
//
//	ErrStackOverflow    - simultaneously live values exceed stack capacity,
//	                      or every usable register holds an operand of
//	                      the current step and none can be spilled.
//	ErrMissingLocation  - an operand hash was not found in location_of; a
//	                      scheduler/liveness bug, never a user error.
//	ErrTooFewRegisters  - fewer than 2 registers requested (need >=1
//	                      usable register plus the reserved scratch slot).
package regalloc
