package search

import (
	"math/big"

	"github.com/zillionlab/fourchain/pnum"
)

// maxLargestZillions caps the repeat count Largest will derive before
// the closed form would need a zillion index outside int64 range.
const maxLargestZillions = int64(1) << 50

// Largest finds the maximal nonnegative integer whose numeral has
// exactly target letters. Every spare letter buys another "two"
// period ("two" + "illion" prefix growth), so the answer is "ten"
// followed by a long tail of zero periods whose count encodes the
// letter budget.
//
// Targets below 3 return ErrTargetTooShort; targets whose tail would
// exceed the representable zillion range return ErrTargetTooLarge.
func Largest(target *pnum.PNumber) (*pnum.PNumber, error) {
	t := target.Int(nil)
	if !t.IsInt64() {
		return nil, ErrTargetTooLarge
	}
	tv := t.Int64()
	if tv < minKeyLetters {
		return nil, ErrTargetTooShort
	}
	if tv < 10 {
		return pnum.FromInt64(largestSmallTargets[tv])
	}

	// Ten takes 3 letters, the closing "illion" block 2 more; the
	// remaining budget splits into full 5-letter "two …illion" steps
	// plus a remainder spent on the leading periods of the tail.
	budget := tv - 5
	q, r := budget/5, budget%5

	if q >= maxLargestZillions {
		return nil, ErrTargetTooLarge
	}

	var x *big.Int
	switch r {
	case 0:
		x = repTwos(q)
	case 1:
		x = leadThen(3, q)
	case 2:
		x = leadThen(10, q)
	case 3:
		x = leadThen(100, q)
	case 4:
		if q == 1 {
			// nine centillion: the 100th zillion prefix absorbs the
			// whole remainder at this size.
			return pnum.FromPeriods([]pnum.Period{
				periodBig(9, big.NewInt(1)),
				periodBig(0, big.NewInt(101)),
			}), nil
		}
		x = new(big.Int).Mul(big.NewInt(100003), pow1000(q-2))
		x.Add(x, repTwos(q-2))
	}

	// Result: ten followed by x+1 zero periods.
	x.Add(x, big.NewInt(1))

	return pnum.FromPeriods([]pnum.Period{
		periodBig(10, big.NewInt(1)),
		periodBig(0, x),
	}), nil
}

// repTwos is the integer 2·(1000^k − 1)/999: k base-1000 digits of 2.
func repTwos(k int64) *big.Int {
	x := pow1000(k)
	x.Sub(x, big.NewInt(1))
	x.Div(x, big.NewInt(999))
	x.Mul(x, big.NewInt(2))

	return x
}

// leadThen is lead·1000^(q−1) followed by q−1 digits of 2.
func leadThen(lead, q int64) *big.Int {
	x := new(big.Int).Mul(big.NewInt(lead), pow1000(q-1))
	x.Add(x, repTwos(q-1))

	return x
}

func pow1000(k int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(1000), big.NewInt(k), nil)
}
