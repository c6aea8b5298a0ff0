// SPDX-License-Identifier: MIT

// Package catalog holds the twelve S-Gram structures (indices 0-11) as
// process-wide, read-only data.
//
// What:
//
//   - Structure: index, symbol ("s1".."s12"), Catalan number (*big.Int),
//     fraction (index/index², degenerate 0/0 at index 0), formula result
//     1+(1+index)², formula parts, bracket notation, and two ordered pattern
//     namespaces: "patterns" and "additionalFactors".
//   - Pattern: a divisor key ("numerator/denominator") bound to a closed
//     cycle.Cycle of states, aware of its namespace and owning structure.
//   - Lookup order for a key is always patterns first, additionalFactors
//     second.
//
// Lifecycle:
//
//   - The catalog is built from the literal table in data.go on first use
//     (sync.OnceValues), validated once, and never mutated afterwards.
//     Validation cross-checks every literal Catalan number and formula
//     result against the closed forms in catalan.go.
//
// Errors:
//
//   - ErrIndexOutOfRange   index outside [0, 11]
//   - ErrPatternNotFound   key absent from both namespaces
//   - ErrBadDivisor        key not of the form "int/int" with non-zero denominator
//   - ErrCatalogInvalid    literal data failed validation
//   - *StateError          state absent from a pattern; unwraps to
//     cycle.ErrStateNotFound and carries the structure, key and state
//
// Concurrency:
//
//   - Every value handed out is immutable (accessors return copies of
//     slices and big integers), so no locking is needed by readers.
package catalog
