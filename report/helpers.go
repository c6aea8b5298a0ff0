// SPDX-License-Identifier: MIT

package report

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/sgrams/catalog"
)

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, sep)
}

// reduced renders the lowest-terms fraction, or "degenerate" for n/0.
func reduced(f catalog.Fraction) string {
	if f.IsDegenerate() {
		return "degenerate"
	}

	return f.Reduced().String()
}

func sortedKeys[V any](m map[int]V) []int { return slices.Sorted(maps.Keys(m)) }
