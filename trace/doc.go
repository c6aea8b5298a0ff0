// SPDX-License-Identifier: MIT

// Package trace walks a state through one pattern of a structure.
//
// What:
//
//   - Trace: the materialised path of steps+1 states, beginning with start and
//     applying resolve (Forward) or inform (Backward) steps times.
//   - Walk: the same path as a lazy iter.Seq that never ends on its own; the
//     caller decides when to stop, so memory stays O(1) for any horizon.
//   - CycleLength: how many steps the walk needs to come back to start.
//   - CheckSteps: the caller-side bound applied by the CLI and MCP server
//     before a request reaches Trace.
//
// Errors:
//
//   - ErrNegativeSteps          steps < 0
//   - ErrStepLimit              steps above the limit given to CheckSteps
//   - ErrBadDirection           unknown direction value or name
//   - catalog.ErrPatternNotFound  key absent from both namespaces
//   - *catalog.StateError       start not in the resolved pattern
//
// Complexity:
//
//   - Trace: Time O(steps), Memory O(steps). Trace itself accepts any
//     non-negative steps and reserves at most 2^16+1 slots up front;
//     bounding steps is the caller's job (see CheckSteps).
//   - Walk:  O(1) per yielded state.
package trace
