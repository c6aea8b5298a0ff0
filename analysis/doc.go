// SPDX-License-Identifier: MIT

// Package analysis derives read-only facts about the patterns of one
// structure.
//
// What:
//
//   - PatternsContaining: every pattern (both namespaces) holding a state.
//   - PrimaryPattern: the longest entry of "patterns"; ties go to the
//     lexicographically smallest divisor key. Listing order plays no part.
//   - AllStates, CycleLengthGroups, StateDistribution, SingletonStates: views
//     over the "patterns" namespace only.
//   - UniqueStates, Overlap, CycleSummary, CrossTransition: views spanning
//     both namespaces.
//   - Report: the bundle returned by the engine's analyze operation.
//
// Every function is pure; an Analyzer may be shared between goroutines.
package analysis
