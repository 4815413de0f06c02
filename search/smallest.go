package search

import (
	"math/big"

	"github.com/zillionlab/fourchain/letters"
	"github.com/zillionlab/fourchain/pnum"
)

// anchorPeriod is the most letter-efficient three-digit period value;
// auxPeriod spells exactly one letter fewer and absorbs the exception
// substitutions.
const (
	anchorPeriod = 373
	auxPeriod    = 323
	onePeriod    = 1
)

// Smallest finds the minimal nonnegative integer whose numeral has
// exactly target letters. The target is itself a PNumber, so chains
// may invert name lengths that no machine integer could hold.
//
// Targets below 3 return ErrTargetTooShort. Targets up to 24 resolve
// through the key-period table; beyond that the 373-run bracket search
// and its correction steps apply.
func Smallest(target *pnum.PNumber) (*pnum.PNumber, error) {
	if t, ok := target.Int64(); ok && t <= maxKeyLetters {
		switch {
		case t < minKeyLetters:
			return nil, ErrTargetTooShort
		case t == 3:
			return pnum.FromInt64(6) // six
		case t == 4:
			return pnum.FromInt64(5) // five
		default:
			return pnum.FromInt64(int64(keyPeriods[int(t)]))
		}
	}

	one := big.NewInt(1)

	// Exponential bracket: double a pure 373-run until its name
	// length reaches the target.
	nMax := big.NewInt(1)
	for runLength(nMax).Cmp(target) < 0 {
		nMax.Lsh(nMax, 1)
	}

	// Binary search the repeat count to the exact boundary: one fewer
	// period falls short, nMax reaches or exceeds.
	nMin := big.NewInt(1)
	for {
		oneLess := new(big.Int).Sub(nMax, one)
		if runLength(oneLess).Cmp(target) < 0 && runLength(nMax).Cmp(target) >= 0 {
			break
		}
		mid := new(big.Int).Add(nMin, nMax)
		mid.Rsh(mid, 1)
		if runLength(mid).Cmp(target) < 0 {
			nMin = mid
		} else {
			nMax = mid
		}
	}

	if runLength(nMax).Cmp(target) == 0 {
		return pnum.FromPeriods([]pnum.Period{periodBig(anchorPeriod, nMax)}), nil
	}

	// Shortfall correction: swap trailing 373-periods for leading
	// "one"-periods (21 letters each) until at or below the target.
	ones := new(big.Int)
	trail := new(big.Int).Set(nMax)
	for assembleLength(ones, -1, -1, trail).Cmp(target) > 0 {
		ones.Add(ones, one)
		trail.Sub(trail, one)
	}

	// Remainder correction: release one "one"-period and fill the gap
	// with the minimal period value of the exact missing letter count.
	ones.Sub(ones, one)
	chosen := -1
	for l := minKeyLetters; l <= maxKeyLetters; l++ {
		v := keyPeriods[l]
		if assembleLength(ones, v, -1, trail).Cmp(target) == 0 {
			chosen = v
			break
		}
	}
	if chosen < 0 {
		// The gap is always within [3, 23] letters (each swap moves 21
		// and releasing a "one" adds back 3), so the table must hit.
		panic("search: no key period closes the remainder gap")
	}

	// Exception fixup: substitute the smaller irregular value and
	// absorb its extra letter with a 323-period in place of one 373.
	if alt, irregular := keyPeriodExceptions[chosen]; irregular && trail.Sign() > 0 {
		trail.Sub(trail, one)

		return assemble(ones, alt, auxPeriod, trail), nil
	}

	return assemble(ones, chosen, -1, trail), nil
}

// runLength is the name length of a pure 373-run of r periods.
func runLength(r *big.Int) *pnum.PNumber {
	return letters.NameLength(pnum.FromPeriods([]pnum.Period{periodBig(anchorPeriod, r)}))
}

// assemble builds [ones × "one"][slot][aux][trail × 373], skipping
// empty segments; slot and aux are single periods, −1 for absent.
func assemble(ones *big.Int, slot, aux int, trail *big.Int) *pnum.PNumber {
	ps := make([]pnum.Period, 0, 4)
	if ones.Sign() > 0 {
		ps = append(ps, periodBig(onePeriod, ones))
	}
	if slot >= 0 {
		ps = append(ps, periodBig(slot, big.NewInt(1)))
	}
	if aux >= 0 {
		ps = append(ps, periodBig(aux, big.NewInt(1)))
	}
	if trail.Sign() > 0 {
		ps = append(ps, periodBig(anchorPeriod, trail))
	}

	return pnum.FromPeriods(ps)
}

func assembleLength(ones *big.Int, slot, aux int, trail *big.Int) *pnum.PNumber {
	return letters.NameLength(assemble(ones, slot, aux, trail))
}

// periodBig wraps pnum.NewPeriodBig for table-driven values that are
// valid by construction.
func periodBig(value int, repeat *big.Int) pnum.Period {
	p, err := pnum.NewPeriodBig(value, repeat)
	if err != nil {
		panic(err)
	}

	return p
}
