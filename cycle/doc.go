// SPDX-License-Identifier: MIT

// Package cycle implements the navigation primitives of a closed cyclic
// sequence of integer states.
//
// What:
//
//   - Cycle: an immutable, ordered, non-empty sequence of distinct
//     non-negative states, read cyclically (the successor of the last
//     element is the first one). A value→position map is built once at
//     construction so every lookup is O(1).
//   - Next / Previous: one step forward ("resolve") or backward ("inform")
//     with wraparound. A single-element cycle is a fixed point.
//   - Step: a k-step jump in either direction (negative k walks backward).
//   - Distance: forward steps needed to go from one state to another.
//   - Transitions: the full (previous, state, next) table in sequence order.
//   - Canonical: the minimal rotation (Booth's algorithm), used to compare
//     the shape of two cycles independently of their starting state.
//
// Why:
//
//   - Every S-Gram pattern is one such cycle; higher layers (catalog, trace,
//     analysis) only ever step through sequences via this package.
//
// Complexity:
//
//   - New:          Time O(n), Memory O(n)
//   - Next/Previous/Step/Distance/Contains: Time O(1)
//   - Transitions:  Time O(n)
//   - Canonical:    Time O(n), Memory O(n)
//
// Errors:
//
//   - ErrEmptySequence   sequence has no elements
//   - ErrNegativeState   sequence holds a negative value
//   - ErrDuplicateState  sequence holds the same value twice
//   - ErrStateNotFound   navigation requested from a value not in the cycle
//
// Concurrency:
//
//   - A *Cycle never changes after New returns; it is safe for any number of
//     concurrent readers without locking.
package cycle
