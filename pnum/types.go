package pnum

import (
	"fmt"
	"math/big"
)

// Period is one run of identical base-1000 digit groups: Repeat
// consecutive groups equal to Value. Periods are immutable value
// objects; construct them with NewPeriod or NewPeriodBig.
type Period struct {
	value  int
	repeat *big.Int
}

// NewPeriod builds a period of the given value repeated repeat times.
// value must lie in [0, 1000) and repeat must be non-negative; a
// zero-repeat period is legal input to the mutation operations and is
// dropped when its holder normalizes.
func NewPeriod(value int, repeat int64) (Period, error) {
	return NewPeriodBig(value, big.NewInt(repeat))
}

// NewPeriodBig is NewPeriod for repeat counts beyond int64.
func NewPeriodBig(value int, repeat *big.Int) (Period, error) {
	if value < 0 || value >= 1000 {
		return Period{}, fmt.Errorf("%w: got %d", ErrPeriodValue, value)
	}
	if repeat == nil || repeat.Sign() < 0 {
		return Period{}, fmt.Errorf("%w: got %v", ErrPeriodRepeat, repeat)
	}

	return Period{value: value, repeat: new(big.Int).Set(repeat)}, nil
}

// Value returns the period value in [0, 1000).
func (p Period) Value() int { return p.value }

// Repeat returns a copy of the repeat count.
func (p Period) Repeat() *big.Int { return new(big.Int).Set(p.repeat) }

// String renders the period in abbreviation form: a repeat of one as
// the zero-padded value, larger repeats as "[PPP]{R}", zero repeats as
// nothing.
func (p Period) String() string {
	switch {
	case p.repeat == nil || p.repeat.Sign() == 0:
		return ""
	case p.repeat.Cmp(bigOne) == 0:
		return fmt.Sprintf("%03d", p.value)
	default:
		return fmt.Sprintf("[%03d]{%s}", p.value, p.repeat)
	}
}

var (
	bigOne  = big.NewInt(1)
	big1000 = big.NewInt(1000)
	big999  = big.NewInt(999)
)
