// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math/big"
)

// Fraction is an unreduced numerator/denominator pair.
// A zero denominator marks the degenerate index-0 fraction; it is never divided.
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// IsDegenerate reports whether the denominator is zero.
func (f Fraction) IsDegenerate() bool { return f.Denominator == 0 }

// Reduced divides both terms by their greatest common divisor.
// Degenerate fractions are returned unchanged.
func (f Fraction) Reduced() Fraction {
	if f.IsDegenerate() {
		return f
	}
	g := gcd(abs64(f.Numerator), abs64(f.Denominator))
	if g == 0 {
		return f
	}

	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Rat returns the exact rational value, or (nil, false) when degenerate.
func (f Fraction) Rat() (*big.Rat, bool) {
	if f.IsDegenerate() {
		return nil, false
	}

	return big.NewRat(f.Numerator, f.Denominator), true
}

// String renders "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// gcd is Euclid's algorithm over non-negative integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
