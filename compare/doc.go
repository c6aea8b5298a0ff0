// SPDX-License-Identifier: MIT

// Package compare relates several structures to one another.
//
// What:
//
//   - CommonByDenominator: primary patterns grouped by the denominator of
//     their divisor key, each group ordered by structure then listing order.
//   - GrowthSequence: the Catalan numbers, index-ascending.
//   - CommonCycleLengths, SharedDivisors, PrimaryPatterns and Growth: wider
//     comparative views used by reports.
//   - VerifyCatalanGrowth: checks every Catalan number against the closed
//     form and the ratio recurrence C(n+1) = C(n)·2(2n+1)/(n+2).
//
// Input order does not matter: New sorts by index and drops duplicates.
//
// Errors:
//
//   - ErrCatalanGrowth  a Catalan number breaks the growth law
package compare
