// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"sync"
)

const (
	// MinIndex is the smallest structure index.
	MinIndex = 0
	// MaxIndex is the largest structure index.
	MaxIndex = 11
	// Size is the number of structures in the catalog.
	Size = MaxIndex - MinIndex + 1
)

// Catalog is the validated, immutable set of structures.
type Catalog struct {
	structures []*Structure // position == index
}

// load builds the process-wide catalog exactly once.
var load = sync.OnceValues(func() (*Catalog, error) { return build(table) })

// Load returns the process-wide catalog, building and validating it on the
// first call. A validation failure is returned on every call.
func Load() (*Catalog, error) { return load() }

// Get returns the structure at index from the process-wide catalog.
func Get(index int) (*Structure, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}

	return c.Get(index)
}

// All returns every structure of the process-wide catalog in index order.
func All() ([]*Structure, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}

	return c.All(), nil
}

// Get returns the structure at index.
func (c *Catalog) Get(index int) (*Structure, error) {
	if index < MinIndex || index > MaxIndex {
		return nil, fmt.Errorf("index %d not in [%d, %d]: %w", index, MinIndex, MaxIndex, ErrIndexOutOfRange)
	}

	return c.structures[index-MinIndex], nil
}

// All returns the structures in index order.
func (c *Catalog) All() []*Structure { return slices.Clone(c.structures) }

// Structures yields the structures in index order without copying.
func (c *Catalog) Structures() iter.Seq[*Structure] { return slices.Values(c.structures) }

// Len returns the number of structures.
func (c *Catalog) Len() int { return len(c.structures) }

// build converts and validates the literal rows.
// Complexity: O(total states).
func build(rows []entry) (*Catalog, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(rows), Size, ErrCatalogInvalid)
	}

	c := &Catalog{structures: make([]*Structure, 0, Size)}
	for i, row := range rows {
		s, err := buildStructure(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if s.index != MinIndex+i {
			return nil, fmt.Errorf("row %d carries index %d: %w", i, s.index, ErrCatalogInvalid)
		}
		c.structures = append(c.structures, s)
	}

	return c, nil
}

func buildStructure(row entry) (*Structure, error) {
	// 1) Scalar cross-checks against the closed forms.
	want := StructureCatalan(row.index)
	if want.Cmp(big.NewInt(row.catalan)) != 0 {
		return nil, fmt.Errorf("%s: catalan %d, want %s: %w", Symbol(row.index), row.catalan, want, ErrCatalogInvalid)
	}
	idx := int64(row.index)
	if row.num != idx || row.den != idx*idx {
		return nil, fmt.Errorf("%s: fraction %d/%d, want %d/%d: %w",
			Symbol(row.index), row.num, row.den, idx, idx*idx, ErrCatalogInvalid)
	}
	if len(row.patterns) == 0 {
		return nil, fmt.Errorf("%s: no patterns: %w", Symbol(row.index), ErrCatalogInvalid)
	}

	s := &Structure{
		index:          row.index,
		catalan:        want,
		fraction:       Fraction{Numerator: row.num, Denominator: row.den},
		base:           row.base,
		expansion:      row.expansion,
		notation:       row.notation,
		transformation: row.transformation,
		patternByKey:   make(map[string]*Pattern, len(row.patterns)),
		factorByKey:    make(map[string]*Pattern, len(row.factors)),
	}

	// 2) Both namespaces, preserving listing order and rejecting duplicates.
	var err error
	if s.patterns, err = buildNamespace(row.index, Primary, row.patterns, s.patternByKey); err != nil {
		return nil, err
	}
	if s.factors, err = buildNamespace(row.index, Factor, row.factors, s.factorByKey); err != nil {
		return nil, err
	}

	return s, nil
}

func buildNamespace(index int, ns Namespace, rows []keyed, byKey map[string]*Pattern) ([]*Pattern, error) {
	out := make([]*Pattern, 0, len(rows))
	for _, kv := range rows {
		if _, dup := byKey[kv.key]; dup {
			return nil, fmt.Errorf("%s: %s key %q repeated: %w", Symbol(index), ns, kv.key, ErrCatalogInvalid)
		}
		p, err := newPattern(index, ns, kv.key, kv.seq)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", Symbol(index), ns, err)
		}
		byKey[kv.key] = p
		out = append(out, p)
	}

	return out, nil
}
