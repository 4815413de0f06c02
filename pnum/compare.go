package pnum

// Cmp compares two PNumbers, returning −1, 0 or +1. The order is
// total and consistent with integer magnitude: more periods means
// larger; on equal zillion, runs are compared most significant first,
// and when one side's run ends before the other's, its next value is
// compared against the longer run's value — the first digit position
// where the two numbers diverge. Normalization guarantees that
// comparison decides there.
func (n *PNumber) Cmp(m *PNumber) int {
	if zc := n.Zillion().Cmp(m.Zillion()); zc != 0 {
		return zc
	}

	i, j := 0, 0
	for i < len(n.periods) && j < len(m.periods) {
		a, b := n.periods[i], m.periods[j]
		if a.value != b.value {
			return sign(a.value - b.value)
		}
		switch a.repeat.Cmp(b.repeat) {
		case 0:
			i++
			j++
		case -1:
			// n's run ends first; its next value sits against b's run.
			i++
			if i == len(n.periods) {
				return 0
			}

			return sign(n.periods[i].value - b.value)
		case 1:
			j++
			if j == len(m.periods) {
				return 0
			}

			return sign(a.value - m.periods[j].value)
		}
	}

	return 0
}

// Equal reports whether n and m represent the same integer.
func (n *PNumber) Equal(m *PNumber) bool { return n.Cmp(m) == 0 }

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
