package pnum

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse decodes abbreviation text into a PNumber. Components:
//
//	DDD        — one period of value DDD
//	[DDD]{R}   — value DDD repeated R times (R in decimal, any size)
//	D or DD    — a short leading group, legal only at the very start
//
// Adjacent components of equal value merge by summing repeats. Any
// text that does not match the grammar is an ErrBadAbbreviation naming
// the offending segment. The empty string decodes to the empty
// PNumber.
func Parse(s string) (*PNumber, error) {
	var ps []Period
	add := func(value int, repeat *big.Int) {
		if len(ps) > 0 && ps[len(ps)-1].value == value {
			last := &ps[len(ps)-1]
			last.repeat = new(big.Int).Add(last.repeat, repeat)

			return
		}
		ps = append(ps, Period{value: value, repeat: new(big.Int).Set(repeat)})
	}

	pos := 0
	for pos < len(s) {
		switch {
		case s[pos] == '[':
			value, repeat, next, ok := scanRepetition(s, pos)
			if !ok {
				return nil, segmentErr(s, pos)
			}
			add(value, repeat)
			pos = next
		case isDigit(s[pos]):
			run := pos
			for run < len(s) && isDigit(s[run]) {
				run++
			}
			length := run - pos
			if pos == 0 && length%3 != 0 {
				// Short leading group.
				lead := length % 3
				add(atoi3(s[:lead]), bigOne)
				pos = lead
				length -= lead
			}
			if length%3 != 0 {
				// A mid-string group that cannot split into threes.
				return nil, segmentErr(s, pos+length-length%3)
			}
			for ; pos < run; pos += 3 {
				add(atoi3(s[pos:pos+3]), bigOne)
			}
		default:
			return nil, segmentErr(s, pos)
		}
	}

	return FromPeriods(ps), nil
}

// String encodes the PNumber in abbreviation form: repeat-one periods
// as zero-padded triples, larger repeats as "[PPP]{R}". Leading zero
// digits are stripped; an empty or all-stripped result renders as "0".
func (n *PNumber) String() string {
	var b strings.Builder
	for _, p := range n.periods {
		b.WriteString(p.String())
	}
	out := strings.TrimLeft(b.String(), "0")
	if out == "" {
		return "0"
	}

	return out
}

// scanRepetition matches "[DDD]{R}" at pos; next is the index past the
// closing brace.
func scanRepetition(s string, pos int) (value int, repeat *big.Int, next int, ok bool) {
	rest := s[pos:]
	if len(rest) < len("[000]{0}") ||
		!isDigit(rest[1]) || !isDigit(rest[2]) || !isDigit(rest[3]) ||
		rest[4] != ']' || rest[5] != '{' {
		return 0, nil, 0, false
	}
	end := 6
	for end < len(rest) && isDigit(rest[end]) {
		end++
	}
	if end == 6 || end == len(rest) || rest[end] != '}' {
		return 0, nil, 0, false
	}

	repeat, _ = new(big.Int).SetString(rest[6:end], 10)

	return atoi3(rest[1:4]), repeat, pos + end + 1, true
}

func segmentErr(s string, pos int) error {
	return fmt.Errorf("%w: %q", ErrBadAbbreviation, s[pos:])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// atoi3 converts a 1–3 digit substring already validated as digits.
func atoi3(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}

	return v
}
