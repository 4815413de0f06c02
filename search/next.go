package search

import (
	"math/big"

	"github.com/zillionlab/fourchain/lexicon"
	"github.com/zillionlab/fourchain/pnum"
)

// Next returns the successor of n in the fixed-name-length sequence:
// the smallest PNumber greater than n whose name has the same letter
// count, reached by bumping the least significant period to the next
// equal-letter value. When the least significant period already holds
// the largest such value, ErrNoSuccessor is returned.
//
// An all-zero (or empty) PNumber starts the sequence at five, the
// smallest number in the four-letter class above the fixed point.
func Next(n *pnum.PNumber) (*pnum.PNumber, error) {
	if n.AllZero() {
		return pnum.FromInt64(5)
	}

	ps := n.Periods()
	last := ps[len(ps)-1]
	want := lexicon.NameLetters(last.Value())

	succ := -1
	for v := last.Value() + 1; v < 1000; v++ {
		if lexicon.NameLetters(v) == want {
			succ = v
			break
		}
	}
	if succ < 0 {
		return nil, ErrNoSuccessor
	}

	if last.Repeat().Cmp(big.NewInt(1)) > 0 {
		shrunk := new(big.Int).Sub(last.Repeat(), big.NewInt(1))
		ps[len(ps)-1] = periodBig(last.Value(), shrunk)
		ps = append(ps, periodBig(succ, big.NewInt(1)))
	} else {
		ps[len(ps)-1] = periodBig(succ, big.NewInt(1))
	}

	return pnum.FromPeriods(ps), nil
}
