package lexicon

import "strings"

// Zero is the numeral spoken for a number whose periods are all zero.
// It never appears inside a larger numeral, so Name(0) is empty.
const Zero = "zero"

// Thousand is the irregular scale name at zillion index 0.
const Thousand = "thousand"

var unitWords = [20]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// numerals[v] is the numeral for v; numeralLetters[v] its letter count.
var (
	numerals       [1000]string
	numeralLetters [1000]int
)

func init() {
	for v := range numerals {
		numerals[v] = spell(v)
		numeralLetters[v] = Letters(numerals[v])
	}
}

// spell writes the numeral for v in [0, 1000); spell(0) is empty.
func spell(v int) string {
	var parts []string
	if h := v / 100; h > 0 {
		parts = append(parts, unitWords[h], "hundred")
	}
	switch rest := v % 100; {
	case rest == 0:
	case rest < 20:
		parts = append(parts, unitWords[rest])
	case rest%10 == 0:
		parts = append(parts, tensWords[rest/10])
	default:
		parts = append(parts, tensWords[rest/10]+"-"+unitWords[rest%10])
	}

	return strings.Join(parts, " ")
}

// Name returns the numeral for a period value v in [0, 1000).
// Name(0) is the empty string: a zero period is never spoken inside a
// larger numeral (use Zero for an all-zero number).
func Name(v int) string { return numerals[v] }

// NameLetters returns the number of letters in Name(v).
func NameLetters(v int) int { return numeralLetters[v] }

// Letters counts the alphabetic characters in s, ignoring spaces,
// hyphens, digits and anything else.
func Letters(s string) int {
	n := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}

	return n
}
