package pnum

import (
	"math/big"

	"github.com/zillionlab/fourchain/digits"
)

// PNumber is a nonnegative integer stored as its base-1000 digit
// groups, run-length compressed into an ordered period sequence. The
// zero value is the empty PNumber (no periods, zillion −1).
//
// Invariants, restored after every mutation:
//   - no two adjacent periods share a value;
//   - every repeat is ≥ 1 (zero-repeat periods are dropped).
type PNumber struct {
	periods []Period
}

// FromInt64 builds a PNumber from a nonnegative machine integer.
func FromInt64(n int64) (*PNumber, error) {
	return FromBig(big.NewInt(n))
}

// FromBig builds a PNumber from a nonnegative big integer, one period
// per base-1000 digit group, compressed.
func FromBig(n *big.Int) (*PNumber, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}

	p := &PNumber{}
	for _, d := range digits.Rebase(n, 1000) {
		p.periods = append(p.periods, Period{value: int(d.Coeff), repeat: big.NewInt(1)})
	}
	p.normalize()

	return p, nil
}

// FromPeriods builds a PNumber from an explicit period sequence,
// normalizing it. The input slice is not retained.
func FromPeriods(ps []Period) *PNumber {
	p := &PNumber{periods: make([]Period, len(ps))}
	copy(p.periods, ps)
	p.normalize()

	return p
}

// Periods returns a copy of the period sequence, most significant
// first.
func (n *PNumber) Periods() []Period {
	out := make([]Period, len(n.periods))
	copy(out, n.periods)

	return out
}

// NumPeriods returns the total number of base-1000 digit groups, i.e.
// the sum of all repeats.
func (n *PNumber) NumPeriods() *big.Int {
	total := new(big.Int)
	for _, p := range n.periods {
		total.Add(total, p.repeat)
	}

	return total
}

// Zillion returns the index of the most significant named scale:
// 0 = thousand, 1 = million, …; −1 for the empty PNumber.
func (n *PNumber) Zillion() *big.Int {
	z := n.NumPeriods()

	return z.Sub(z, bigOne)
}

// AllZero reports whether every period value is zero. The empty
// PNumber is vacuously all-zero.
func (n *PNumber) AllZero() bool {
	for _, p := range n.periods {
		if p.value != 0 {
			return false
		}
	}

	return true
}

// Append adds a period at the least significant end and re-normalizes.
func (n *PNumber) Append(p Period) {
	n.periods = append(n.periods, p)
	n.normalize()
}

// Prepend adds a period at the most significant end and re-normalizes.
func (n *PNumber) Prepend(p Period) {
	n.periods = append([]Period{p}, n.periods...)
	n.normalize()
}

// Insert places a period before position i (0 = most significant;
// i = len appends) and re-normalizes.
func (n *PNumber) Insert(i int, p Period) error {
	if i < 0 || i > len(n.periods) {
		return ErrIndex
	}

	n.periods = append(n.periods, Period{})
	copy(n.periods[i+1:], n.periods[i:])
	n.periods[i] = p
	n.normalize()

	return nil
}

// Inject places a period at an absolute scale offset. A scale beyond
// the current zillion prepends the period; a scale inside an existing
// run merges repeats when the values match, otherwise the run splits
// into two sub-runs around the injected period.
func (n *PNumber) Inject(zillion *big.Int, p Period) {
	if zillion.Cmp(n.Zillion()) > 0 {
		n.Prepend(p)

		return
	}

	lastZ := big.NewInt(-1)
	thisZ := big.NewInt(-1)
	for i := len(n.periods) - 1; i >= 0; i-- {
		cur := n.periods[i]
		thisZ.Add(thisZ, cur.repeat)
		if thisZ.Cmp(zillion) >= 0 {
			if cur.value == p.value {
				merged := new(big.Int).Add(cur.repeat, p.repeat)
				n.periods[i] = Period{value: cur.value, repeat: merged}
			} else {
				upper := Period{value: cur.value, repeat: new(big.Int).Sub(thisZ, zillion)}
				lower := Period{value: cur.value, repeat: new(big.Int).Sub(zillion, lastZ)}
				split := []Period{upper, p, lower}
				n.periods = append(n.periods[:i], append(split, n.periods[i+1:]...)...)
			}
			break
		}
		lastZ.Add(lastZ, cur.repeat)
	}
	n.normalize()
}

// MaterializeOptions guards exact integer materialization.
type MaterializeOptions struct {
	// PeriodThreshold is the period count above which OnAdvisory fires.
	PeriodThreshold int64

	// OnAdvisory receives the period count of an over-threshold
	// materialization. Advisory only — the materialization proceeds.
	OnAdvisory func(numPeriods *big.Int)
}

// DefaultMaterializeOptions returns the default guard: advisory above
// one hundred thousand periods, no hook installed.
func DefaultMaterializeOptions() MaterializeOptions {
	return MaterializeOptions{PeriodThreshold: 100000}
}

// Int materializes the exact integer value. Cost is proportional to
// the total digit count, which for large repeat counts is vastly
// larger than the PNumber itself; above opts.PeriodThreshold the
// OnAdvisory hook (if any) is invoked first. A nil opts uses
// DefaultMaterializeOptions.
func (n *PNumber) Int(opts *MaterializeOptions) *big.Int {
	o := DefaultMaterializeOptions()
	if opts != nil {
		o = *opts
	}
	if o.OnAdvisory != nil {
		if np := n.NumPeriods(); np.Cmp(big.NewInt(o.PeriodThreshold)) > 0 {
			o.OnAdvisory(np)
		}
	}

	return n.bigInt()
}

// bigInt evaluates Σ runs as result·1000^r + v·(1000^r−1)/999 per run.
func (n *PNumber) bigInt() *big.Int {
	result := new(big.Int)
	scale := new(big.Int)
	run := new(big.Int)
	for _, p := range n.periods {
		scale.Exp(big1000, p.repeat, nil)
		result.Mul(result, scale)

		// v·(1000^r − 1)/999 spreads value v across r groups.
		run.Sub(scale, bigOne)
		run.Quo(run, big999)
		run.Mul(run, big.NewInt(int64(p.value)))
		result.Add(result, run)
	}

	return result
}

// Int64 extracts the value as an int64 when it fits; ok is false
// otherwise.
func (n *PNumber) Int64() (v int64, ok bool) {
	if n.NumPeriods().Cmp(big.NewInt(7)) > 0 {
		return 0, false
	}
	b := n.bigInt()
	if !b.IsInt64() {
		return 0, false
	}

	return b.Int64(), true
}

// Approximate returns the value using only the k most significant
// periods: value = coeff · 1000^exp with the dropped periods folded
// into the exponent. Cost is O(k) regardless of the true magnitude.
func (n *PNumber) Approximate(k int64) (coeff, exp *big.Int) {
	coeff = new(big.Int)
	used := new(big.Int)
	remaining := big.NewInt(k)
	scale := new(big.Int)
	run := new(big.Int)
	for _, p := range n.periods {
		if remaining.Sign() <= 0 {
			break
		}
		take := p.repeat
		if take.Cmp(remaining) > 0 {
			take = remaining
		}

		scale.Exp(big1000, take, nil)
		coeff.Mul(coeff, scale)
		run.Sub(scale, bigOne)
		run.Quo(run, big999)
		run.Mul(run, big.NewInt(int64(p.value)))
		coeff.Add(coeff, run)

		used.Add(used, take)
		remaining = new(big.Int).Sub(remaining, take)
	}

	exp = n.NumPeriods()
	exp.Sub(exp, used)

	return coeff, exp
}

// normalize merges adjacent equal-value runs and drops zero repeats.
func (n *PNumber) normalize() {
	out := n.periods[:0]
	for _, p := range n.periods {
		if p.repeat == nil || p.repeat.Sign() == 0 {
			continue
		}
		if len(out) > 0 && out[len(out)-1].value == p.value {
			prev := out[len(out)-1]
			out[len(out)-1] = Period{
				value:  prev.value,
				repeat: new(big.Int).Add(prev.repeat, p.repeat),
			}
			continue
		}
		out = append(out, p)
	}
	n.periods = out
}
