// Package liveness computes, for each schedule step, the set of
// values whose last use as an argument occurs at that step.
//
// Analyze performs a single reverse pass over a schedule.Schedule: for
// each step from last to first, it records every argument hash not
// yet seen as "disappearing" at this step, then marks it seen. A
// value's live range therefore runs from the step that defines it to
// the step recorded in Table.Disappear for its hash (or to the end of
// the schedule if it never appears as an argument — outputs with no
// further consumer).
package liveness
