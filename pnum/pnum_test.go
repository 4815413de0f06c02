package pnum_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zillionlab/fourchain/pnum"
)

func mustPeriod(t *testing.T, value int, repeat int64) pnum.Period {
	t.Helper()
	p, err := pnum.NewPeriod(value, repeat)
	require.NoError(t, err)
	return p
}

func mustFromInt64(t *testing.T, v int64) *pnum.PNumber {
	t.Helper()
	n, err := pnum.FromInt64(v)
	require.NoError(t, err)
	return n
}

// TestFromInt64_RoundTrip materializes back to the source integer.
func TestFromInt64_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 999, 1000, 1001, 373373, 987654321} {
		n := mustFromInt64(t, v)
		assert.Equal(t, v, n.Int(nil).Int64(), "value %d", v)

		got, ok := n.Int64()
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

// TestFromBig_Negative rejects negative input.
func TestFromBig_Negative(t *testing.T) {
	_, err := pnum.FromBig(big.NewInt(-4))
	assert.ErrorIs(t, err, pnum.ErrNegative)
}

// TestNewPeriod_Validation rejects out-of-range values and negative
// repeats.
func TestNewPeriod_Validation(t *testing.T) {
	_, err := pnum.NewPeriod(1000, 1)
	assert.ErrorIs(t, err, pnum.ErrPeriodValue)

	_, err = pnum.NewPeriod(-1, 1)
	assert.ErrorIs(t, err, pnum.ErrPeriodValue)

	_, err = pnum.NewPeriod(5, -1)
	assert.ErrorIs(t, err, pnum.ErrPeriodRepeat)

	_, err = pnum.NewPeriodBig(5, nil)
	assert.ErrorIs(t, err, pnum.ErrPeriodRepeat)
}

// TestFromPeriods_Compression merges adjacent equal values and drops
// zero repeats on construction.
func TestFromPeriods_Compression(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{
		mustPeriod(t, 373, 2),
		mustPeriod(t, 373, 3),
		mustPeriod(t, 21, 0),
		mustPeriod(t, 1, 1),
	})

	ps := n.Periods()
	require.Len(t, ps, 2)
	assert.Equal(t, 373, ps[0].Value())
	assert.Equal(t, int64(5), ps[0].Repeat().Int64())
	assert.Equal(t, 1, ps[1].Value())
	assert.Equal(t, int64(1), ps[1].Repeat().Int64())
}

// TestZillion counts named scales: 0 = thousand for a two-period
// number, −1 for the empty number.
func TestZillion(t *testing.T) {
	assert.Equal(t, int64(-1), pnum.FromPeriods(nil).Zillion().Int64())
	assert.Equal(t, int64(0), mustFromInt64(t, 999).Zillion().Int64())
	assert.Equal(t, int64(1), mustFromInt64(t, 1000).Zillion().Int64())

	n, err := pnum.Parse("1103323[373]{8}")
	require.NoError(t, err)
	assert.Equal(t, int64(11), n.NumPeriods().Int64())
	assert.Equal(t, int64(10), n.Zillion().Int64())
}

// TestAllZero holds for the empty number and any all-zero runs.
func TestAllZero(t *testing.T) {
	assert.True(t, pnum.FromPeriods(nil).AllZero())
	assert.True(t, mustFromInt64(t, 0).AllZero())
	assert.True(t, pnum.FromPeriods([]pnum.Period{mustPeriod(t, 0, 7)}).AllZero())
	assert.False(t, mustFromInt64(t, 4).AllZero())
}

// TestInt_RunExpansion spreads a run value across its positions.
func TestInt_RunExpansion(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{
		mustPeriod(t, 1, 1),
		mustPeriod(t, 373, 3),
	})
	assert.Equal(t, int64(1373373373), n.Int(nil).Int64())

	n = pnum.FromPeriods([]pnum.Period{
		mustPeriod(t, 10, 1),
		mustPeriod(t, 0, 3),
	})
	assert.Equal(t, int64(10000000000), n.Int(nil).Int64())
}

// TestInt_Advisory fires the hook above the period threshold and stays
// silent below it.
func TestInt_Advisory(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{mustPeriod(t, 2, 10)})

	var reported *big.Int
	opts := pnum.MaterializeOptions{
		PeriodThreshold: 5,
		OnAdvisory:      func(np *big.Int) { reported = np },
	}
	got := n.Int(&opts)

	require.NotNil(t, reported, "hook must fire above threshold")
	assert.Equal(t, int64(10), reported.Int64())

	want := new(big.Int)
	for i := 0; i < 10; i++ {
		want.Mul(want, big.NewInt(1000))
		want.Add(want, big.NewInt(2))
	}
	assert.Zero(t, got.Cmp(want))

	reported = nil
	opts.PeriodThreshold = 100
	n.Int(&opts)
	assert.Nil(t, reported, "hook must stay silent below threshold")
}

// TestInt64_Overflow reports !ok for values beyond int64.
func TestInt64_Overflow(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{mustPeriod(t, 999, 10)})
	_, ok := n.Int64()
	assert.False(t, ok)
}

// TestApproximate keeps k periods exactly and folds the rest into the
// exponent.
func TestApproximate(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{mustPeriod(t, 373, 50)})

	coeff, exp := n.Approximate(2)
	assert.Equal(t, int64(373373), coeff.Int64())
	assert.Equal(t, int64(48), exp.Int64())

	// More periods than exist: exact value, zero exponent.
	coeff, exp = mustFromInt64(t, 1373).Approximate(10)
	assert.Equal(t, int64(1373), coeff.Int64())
	assert.Zero(t, exp.Sign())
}

// TestInject_Merge grows an existing run when values match.
func TestInject_Merge(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{mustPeriod(t, 373, 3)})
	n.Inject(big.NewInt(1), mustPeriod(t, 373, 2))

	ps := n.Periods()
	require.Len(t, ps, 1)
	assert.Equal(t, int64(5), ps[0].Repeat().Int64())
}

// TestInject_Split inserts a foreign value inside a run, splitting it.
func TestInject_Split(t *testing.T) {
	n := pnum.FromPeriods([]pnum.Period{mustPeriod(t, 373, 3)})
	n.Inject(big.NewInt(1), mustPeriod(t, 323, 1))

	assert.Equal(t, "373323[373]{2}", n.String())
	assert.Equal(t, int64(4), n.NumPeriods().Int64())
}

// TestInject_BeyondZillion prepends exactly once.
func TestInject_BeyondZillion(t *testing.T) {
	n := mustFromInt64(t, 21)
	n.Inject(big.NewInt(1), mustPeriod(t, 5, 1))

	assert.Equal(t, "5021", n.String())
}

// TestAppendPrependInsert re-normalizes after every mutation.
func TestAppendPrependInsert(t *testing.T) {
	n := mustFromInt64(t, 373)
	n.Append(mustPeriod(t, 373, 2))
	assert.Equal(t, "[373]{3}", n.String())

	n.Prepend(mustPeriod(t, 1, 1))
	assert.Equal(t, "1[373]{3}", n.String())

	require.NoError(t, n.Insert(1, mustPeriod(t, 113, 1)))
	assert.Equal(t, "1113[373]{3}", n.String())

	assert.ErrorIs(t, n.Insert(-1, mustPeriod(t, 0, 1)), pnum.ErrIndex)
	assert.ErrorIs(t, n.Insert(9, mustPeriod(t, 0, 1)), pnum.ErrIndex)
}
