package digits

import "math/big"

// Digit is one position of a rebased integer: Coeff·base^Power.
type Digit struct {
	// Coeff is the digit value in [0, base).
	Coeff int64

	// Power is the exponent the base is raised to at this position.
	Power int
}

// Rebase decomposes |decimal| into (coefficient, power) pairs in the
// given base, most significant first, satisfying
//
//	decimal = Σ Coeff·base^Power
//
// Zero rebases to a single zero digit. base must be ≥ 2.
//
// Example:
//
//	Rebase(big.NewInt(123456789), 16)
//	// → [{7 6} {5 5} {11 4} {12 3} {13 2} {1 1} {5 0}]
func Rebase(decimal *big.Int, base int64) []Digit {
	b := big.NewInt(base)
	rem := new(big.Int)
	cur := new(big.Int).Abs(decimal)

	// Collect least significant first, then reverse.
	var coeffs []int64
	for {
		cur.QuoRem(cur, b, rem)
		coeffs = append(coeffs, rem.Int64())
		if cur.Sign() == 0 {
			break
		}
	}

	out := make([]Digit, len(coeffs))
	for i, c := range coeffs {
		out[len(coeffs)-1-i] = Digit{Coeff: c, Power: i}
	}

	return out
}

// Occurs counts occurrences of digit (at any position) among all
// integers in [start, limit) written in the given base. A nil start
// means 0. Ranges that are negative or straddle zero reduce via
// reflection and splitting to non-negative sub-ranges, counting digits
// of absolute values.
//
// Closed form for [0, limit): for each (c, p) of Rebase(limit, base),
// with pob = base^p, accumulate
//
//	pob·(limit div base^(p+1))   — full cycles below this position
//	+ pob            when digit < c — position reaches digit every cycle
//	+ limit mod pob  when digit == c — partial final cycle
//	− pob            when digit == 0 — implicit leading zero never counts
//
// plus a final +1 when digit == 0: the single explicit zero written by
// the number 0 itself.
//
// digit outside [0, base) or an empty range yields 0.
//
// Examples:
//
//	Occurs(0, big.NewInt(100), nil, 10)                  // → 10
//	Occurs(1, big.NewInt(25), big.NewInt(16), 10)        // → 5
//	Occurs(12, big.NewInt(100), nil, 16)                 // → 6
//	Occurs(123, big.NewInt(987654321), nil, 1000)        // → 2975655
func Occurs(digit int64, limit, start *big.Int, base int64) *big.Int {
	if start == nil {
		start = new(big.Int)
	}
	if digit < 0 || digit >= base || limit.Cmp(start) <= 0 {
		return new(big.Int)
	}

	one := big.NewInt(1)
	switch {
	case limit.Sign() <= 0:
		// start < limit <= 0: reflect into the positive axis.
		lo := new(big.Int).Add(new(big.Int).Abs(limit), one)
		hi := new(big.Int).Add(new(big.Int).Abs(start), one)
		return Occurs(digit, hi, lo, base)
	case start.Sign() < 0:
		// start < 0 < limit: split at zero.
		neg := Occurs(digit, new(big.Int).Add(new(big.Int).Abs(start), one), one, base)
		return neg.Add(neg, Occurs(digit, limit, nil, base))
	case start.Sign() > 0:
		// 0 < start < limit: difference of two prefix counts.
		all := Occurs(digit, limit, nil, base)
		return all.Sub(all, Occurs(digit, start, nil, base))
	}

	// start == 0 < limit: closed form over the digits of limit.
	b := big.NewInt(base)
	count := new(big.Int)
	if digit == 0 {
		count.SetInt64(1)
	}

	ds := Rebase(limit, base)
	pob := new(big.Int).Exp(b, big.NewInt(int64(ds[0].Power)), nil)
	tmp := new(big.Int)
	for _, d := range ds {
		// Full cycles: base^p · (limit div base^(p+1)).
		tmp.Mul(pob, b)
		tmp.Quo(limit, tmp)
		count.Add(count, tmp.Mul(tmp, pob))

		if digit < d.Coeff {
			count.Add(count, pob)
		}
		if digit == d.Coeff {
			count.Add(count, tmp.Mod(limit, pob))
		}
		if digit == 0 {
			count.Sub(count, pob)
		}

		pob.Quo(pob, b)
	}

	return count
}
