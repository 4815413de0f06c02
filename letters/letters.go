package letters

import (
	"math/big"

	"github.com/zillionlab/fourchain/digits"
	"github.com/zillionlab/fourchain/lexicon"
	"github.com/zillionlab/fourchain/pnum"
)

const (
	onLetters       = len("on")
	thousandDelta   = len(lexicon.Thousand) - len("nillion")
	zillionBase     = 1000
	numPeriodValues = 1000
)

// PeriodValues counts the letters attributed to period values in the
// numeral of n. A non-empty all-zero number is the single word "zero";
// the empty PNumber counts zero letters.
func PeriodValues(n *pnum.PNumber) *big.Int {
	ps := n.Periods()
	if len(ps) == 0 {
		return new(big.Int)
	}
	if n.AllZero() {
		return big.NewInt(int64(len(lexicon.Zero)))
	}

	total := new(big.Int)
	tmp := new(big.Int)
	for _, p := range ps {
		tmp.SetInt64(int64(lexicon.NameLetters(p.Value())))
		total.Add(total, tmp.Mul(tmp, p.Repeat()))
	}

	return total
}

// PeriodNames counts the letters attributed to scale names in the
// numeral of n. Scale positions covered by zero-valued runs speak no
// name and are subtracted via the same range sum.
func PeriodNames(n *pnum.PNumber) *big.Int {
	top := n.Zillion()
	if top.Sign() < 0 {
		return new(big.Int)
	}

	total := namesInRange(new(big.Int), top)

	ps := n.Periods()
	zillion := big.NewInt(-1)
	for i := len(ps) - 1; i >= 0; i-- {
		repeat := ps[i].Repeat()
		zillion.Add(zillion, repeat)
		if ps[i].Value() == 0 {
			lo := new(big.Int).Sub(zillion, repeat)
			total.Sub(total, namesInRange(lo, new(big.Int).Set(zillion)))
		}
	}

	return total
}

// InName counts all letters in the numeral of n.
func InName(n *pnum.PNumber) *big.Int {
	total := PeriodValues(n)

	return total.Add(total, PeriodNames(n))
}

// NameLength returns InName(n) as a PNumber, the form the inverse
// search consumes.
func NameLength(n *pnum.PNumber) *pnum.PNumber {
	length, err := pnum.FromBig(InName(n))
	if err != nil {
		// Letter counts are nonnegative sums; FromBig cannot reject them.
		panic(err)
	}

	return length
}

// namesInRange sums scale-name letters for zillion positions in
// [max(0, minZ), maxZ): Conway–Wechsler prefix letters per base-1000
// digit of each position, the "on" tail per position, and the
// irregular "thousand" delta once when the range spans position 0.
func namesInRange(minZ, maxZ *big.Int) *big.Int {
	lo := minZ
	if lo.Sign() < 0 {
		lo = new(big.Int)
	}

	total := new(big.Int).Sub(maxZ, lo)
	total.Mul(total, big.NewInt(int64(onLetters)))

	weighted := new(big.Int)
	for d := 0; d < numPeriodValues; d++ {
		occ := digits.Occurs(int64(d), maxZ, lo, zillionBase)
		weighted.SetInt64(int64(lexicon.PrefixLetters(d)))
		total.Add(total, occ.Mul(occ, weighted))
	}

	if minZ.Sign() <= 0 && maxZ.Sign() > 0 {
		total.Add(total, big.NewInt(int64(thousandDelta)))
	}

	return total
}
