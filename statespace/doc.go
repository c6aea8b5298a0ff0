// SPDX-License-Identifier: MIT

// Package statespace treats one structure as a directed transition graph and
// searches it breadth-first.
//
// What
//
//   - Vertices are the states of every pattern in both namespaces.
//   - Each pattern contributes two labelled moves per state: resolve (Forward)
//     to its successor and inform (Backward) to its predecessor. Fixed points
//     contribute nothing.
//   - Route returns the fewest-moves path between two states, mixing patterns
//     and directions freely. A state shared by two patterns is where a route
//     may change pattern.
//   - Reachable lists the connected component of a state.
//
// Determinism
//
//	Moves leave a state in pattern listing order (primary namespace first),
//	forward before backward, so every route is reproducible.
//
// Complexity (V = states, E = moves ≤ 2·Σ cycle lengths)
//
//   - New:   O(V + E)
//   - Route: O(V + E) time, O(V) memory
//
// Errors
//
//   - ErrStateNotFound    endpoint absent from every pattern
//   - ErrUnreachable      no sequence of moves links the endpoints
//   - ErrOptionViolation  invalid Option (e.g. negative depth)
//   - context errors      when the search context is cancelled
package statespace
