package pnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zillionlab/fourchain/pnum"
)

// TestCmp_MatchesIntegerOrder compares every pair of a value sample
// both as PNumbers and as integers.
func TestCmp_MatchesIntegerOrder(t *testing.T) {
	values := []int64{0, 1, 4, 5, 999, 1000, 1001, 373373, 373374, 1373373373}

	for _, a := range values {
		for _, b := range values {
			na, nb := mustFromInt64(t, a), mustFromInt64(t, b)

			want := 0
			if a < b {
				want = -1
			} else if a > b {
				want = 1
			}
			assert.Equal(t, want, na.Cmp(nb), "Cmp(%d, %d)", a, b)
		}
	}
}

// TestCmp_RunBoundaries exercises the one-step lookahead where one
// run ends before the other.
func TestCmp_RunBoundaries(t *testing.T) {
	parse := func(s string) *pnum.PNumber {
		n, err := pnum.Parse(s)
		require.NoError(t, err)
		return n
	}

	// Equal after different segmentations.
	assert.Zero(t, parse("[373]{3}").Cmp(parse("373373373")))

	// Diverging inside a shared prefix run.
	assert.Equal(t, -1, parse("[373]{3}").Cmp(parse("373373374")))
	assert.Equal(t, 1, parse("[373]{3}").Cmp(parse("373373372")))
	assert.Equal(t, -1, parse("373372373").Cmp(parse("[373]{3}")))
	assert.Equal(t, 1, parse("374[373]{2}").Cmp(parse("[373]{3}")))

	// Period count dominates.
	assert.Equal(t, -1, parse("[999]{3}").Cmp(parse("[001]{4}")))

	// Huge repeats never materialize.
	big1 := parse("1[373]{1000000000000000000000}")
	big2 := parse("1[373]{999999999999999999999}374")
	assert.Zero(t, big1.Zillion().Cmp(big2.Zillion()))
	assert.Equal(t, -1, big1.Cmp(big2))
	assert.Equal(t, 1, big2.Cmp(big1))
}

// TestEqual is Cmp == 0.
func TestEqual(t *testing.T) {
	a := mustFromInt64(t, 1373373373)

	b, err := pnum.Parse("1[373]{3}")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(mustFromInt64(t, 4)))
}
