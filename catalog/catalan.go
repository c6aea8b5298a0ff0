// SPDX-License-Identifier: MIT

package catalog

import "math/big"

// Catalan returns the n-th Catalan number C(n) = binom(2n, n) / (n+1).
// Negative n yields zero.
// Complexity: O(n) big-integer multiplications.
func Catalan(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	c := new(big.Int).Binomial(int64(2*n), int64(n))

	return c.Quo(c, big.NewInt(int64(n+1)))
}

// StructureCatalan returns the Catalan number associated with a structure
// index. The family is shifted by one: index 0 maps to C(1) = 1, index 3 to
// C(4) = 14.
func StructureCatalan(index int) *big.Int { return Catalan(index + 1) }

// FormulaResult returns 1 + (1+index)².
func FormulaResult(index int) int {
	k := 1 + index

	return 1 + k*k
}
