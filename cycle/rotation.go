// SPDX-License-Identifier: MIT

package cycle

import (
	"strconv"
	"strings"
)

// Canonical returns the lexicographically minimal rotation of the cycle.
// Two cycles are the same closed loop exactly when their canonical
// rotations are equal.
// Complexity: O(n).
func (c *Cycle) Canonical() []int {
	return MinimalRotation(c.seq)
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. The result is a new slice of length len(s).
// Algorithm overview:
//  1. Duplicate the sequence to length 2n.
//  2. Maintain failure links f, initialised to -1.
//  3. Track the candidate start k; for j in 1..2n-1 adjust k on mismatches.
//  4. Extract the rotation starting at k.
//
// Complexity: O(n) time, O(n) memory.
func MinimalRotation(s []int) []int {
	n := len(s)
	if n == 0 {
		return nil
	}

	doubled := make([]int, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			// here i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]int, n)
	copy(out, doubled[k:k+n])

	return out
}

// joinInts renders xs separated by sep.
func joinInts(xs []int, sep string) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}
