// SPDX-License-Identifier: MIT

package catalog

// Hooks for black-box tests of literal-table validation.

// Row is an exported alias of a literal table row.
type Row = entry

// KV is an exported alias of a keyed sequence.
type KV = keyed

// Table returns a deep copy of the literal rows.
func Table() []Row {
	out := make([]Row, len(table))
	for i, r := range table {
		out[i] = r
		out[i].patterns = append([]keyed(nil), r.patterns...)
		out[i].factors = append([]keyed(nil), r.factors...)
	}

	return out
}

// Build exposes the table builder.
func Build(rows []Row) (*Catalog, error) { return build(rows) }

// NewKV constructs a keyed sequence.
func NewKV(key string, seq ...int) KV { return keyed{key: key, seq: seq} }

// SetPatterns replaces the primary rows of r.
func SetPatterns(r *Row, kvs ...KV) { r.patterns = kvs }

// SetCatalan overrides the literal Catalan number of r.
func SetCatalan(r *Row, v int64) { r.catalan = v }

// SetFraction overrides the literal fraction of r.
func SetFraction(r *Row, num, den int64) { r.num, r.den = num, den }

// SetIndex overrides the literal index of r.
func SetIndex(r *Row, i int) { r.index = i }
