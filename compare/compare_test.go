package compare_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sgrams/catalog"
	"github.com/katalvlaran/sgrams/compare"
)

func all(t *testing.T) []*catalog.Structure {
	t.Helper()
	ss, err := catalog.All()
	require.NoError(t, err)

	return ss
}

func pick(t *testing.T, indices ...int) []*catalog.Structure {
	t.Helper()
	out := make([]*catalog.Structure, 0, len(indices))
	for _, i := range indices {
		s, err := catalog.Get(i)
		require.NoError(t, err)
		out = append(out, s)
	}

	return out
}

// TestNew_OrdersAndDedupes accepts any input order.
func TestNew_OrdersAndDedupes(t *testing.T) {
	c := compare.New(append(pick(t, 7, 3, 7, 0), nil))
	assert.Equal(t, []int{0, 3, 7}, c.Indices())
}

// TestGrowthSequence reproduces the literal Catalan column.
func TestGrowthSequence(t *testing.T) {
	want := []int64{1, 2, 5, 14, 42, 132, 429, 1430, 4862, 16796, 58786, 208012}
	got := compare.New(all(t)).GrowthSequence()
	require.Len(t, got, len(want))
	for i, v := range got {
		assert.Zero(t, v.Cmp(big.NewInt(want[i])), "s%d", i+1)
	}
}

// TestCommonByDenominator groups primary patterns only.
func TestCommonByDenominator(t *testing.T) {
	groups := compare.New(all(t)).CommonByDenominator()

	assert.Equal(t, []compare.Member{{Index: 3, Divisor: "1/7"}, {Index: 7, Divisor: "1/7"}}, groups[7])
	assert.Equal(t, []compare.Member{{Index: 2, Divisor: "1/3"}, {Index: 3, Divisor: "1/3"}}, groups[3])
	assert.Equal(t, []compare.Member{{Index: 0, Divisor: "0/1"}, {Index: 1, Divisor: "1/1"}}, groups[1])
	assert.Equal(t, []compare.Member{{Index: 4, Divisor: "1/13"}, {Index: 4, Divisor: "2/13"}}, groups[13])
	assert.Len(t, groups[111], 19)

	keys := compare.Denominators(groups)
	assert.Equal(t, int64(1), keys[0])
	assert.Equal(t, int64(111), keys[len(keys)-1])
}

// TestSharedDivisors lists keys reused across structures.
func TestSharedDivisors(t *testing.T) {
	got := compare.New(all(t)).SharedDivisors()
	want := []compare.Shared{
		{Divisor: "1/1", Indices: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{Divisor: "1/2", Indices: []int{2, 4, 6, 8, 10}},
		{Divisor: "1/3", Indices: []int{2, 3, 6, 9}},
		{Divisor: "1/4", Indices: []int{4, 8}},
		{Divisor: "1/5", Indices: []int{5, 10}},
		{Divisor: "1/7", Indices: []int{3, 7}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shared divisors mismatch (-want +got):\n%s", diff)
	}
}

// TestCommonCycleLengths surfaces the six-cycles from index 3 onward.
func TestCommonCycleLengths(t *testing.T) {
	sixes := compare.New(all(t)).CommonCycleLengths()[6]
	require.NotEmpty(t, sixes)
	assert.Equal(t, compare.Member{Index: 3, Divisor: "1/7"}, sixes[0])

	seen := map[int]bool{}
	for _, m := range sixes {
		seen[m.Index] = true
	}
	for idx := 3; idx <= catalog.MaxIndex; idx++ {
		assert.True(t, seen[idx], "s%d has a six-cycle", idx+1)
	}
	assert.False(t, seen[2])
}

// TestPrimaryPatterns reuses the analysis tie-break.
func TestPrimaryPatterns(t *testing.T) {
	got := compare.New(pick(t, 3, 8)).PrimaryPatterns()
	want := []compare.Primary{
		{Index: 3, Divisor: "1/7", CycleLength: 6, Sequence: []int{1, 4, 2, 8, 5, 7}},
		{Index: 8, Divisor: "1/8", CycleLength: 7, Sequence: []int{8, 16, 24, 32, 40, 48, 56}},
	}
	assert.Equal(t, want, got)
}

// TestGrowth collects every growth column.
func TestGrowth(t *testing.T) {
	g := compare.New(all(t)).Growth()
	assert.Equal(t, []int64{0, 1, 4, 9, 16, 25, 36, 49, 64, 81, 100, 121}, g.Denominators)
	assert.Equal(t, []int{0, 1, 3, 7, 13, 21, 31, 43, 57, 73, 91, 111}, g.Expansions)
	assert.Equal(t, []int{1, 1, 3, 8, 15, 24, 35, 48, 63, 80, 99, 120}, g.TotalStates)
	assert.Len(t, g.Catalan, 12)
}

// TestVerifyCatalanGrowth holds for contiguous and sparse selections.
func TestVerifyCatalanGrowth(t *testing.T) {
	assert.NoError(t, compare.New(all(t)).VerifyCatalanGrowth())
	assert.NoError(t, compare.New(pick(t, 0, 5, 11)).VerifyCatalanGrowth())
	assert.NoError(t, compare.New(nil).VerifyCatalanGrowth())
}

// TestReport bundles the compare result.
func TestReport(t *testing.T) {
	r := compare.New(pick(t, 4, 3)).Report()
	assert.Equal(t, []int{3, 4}, r.Indices)
	assert.Len(t, r.GrowthSequence, 2)
	assert.Equal(t, "14", r.GrowthSequence[0].String())
	assert.Contains(t, r.CommonByDenominator, int64(13))
	assert.Equal(t, []compare.Shared{{Divisor: "1/1", Indices: []int{3, 4}}}, r.Shared)
	assert.Len(t, r.Primaries, 2)
}
