package lexicon

import "strings"

// Conway–Wechsler components. Each tens/hundreds entry carries the
// assimilation markers the preceding unit reacts to.

var smallPrefixes = [10]string{
	"n", "m", "b", "tr", "quadr", "quint", "sext", "sept", "oct", "non",
}

var unitComponents = [10]string{
	"", "un", "duo", "tre", "quattuor", "quinqua", "se", "septe", "octo", "nove",
}

type scaleComponent struct {
	word    string
	markers string
}

var tensComponents = [10]scaleComponent{
	{"", ""},
	{"deci", "n"},
	{"viginti", "ms"},
	{"triginta", "ns"},
	{"quadraginta", "ns"},
	{"quinquaginta", "ns"},
	{"sexaginta", "n"},
	{"septuaginta", "n"},
	{"octoginta", "mx"},
	{"nonaginta", ""},
}

var hundredComponents = [10]scaleComponent{
	{"", ""},
	{"centi", "nx"},
	{"ducenti", "n"},
	{"trecenti", "ns"},
	{"quadringenti", "ns"},
	{"quingenti", "ns"},
	{"sescenti", "n"},
	{"septingenti", "n"},
	{"octingenti", "mx"},
	{"nongenti", ""},
}

// prefixes[d] is the zillion prefix for base-1000 digit d, without the
// trailing "illi"; prefixLetters[d] = len(prefixes[d] + "illi").
var (
	prefixes      [1000]string
	prefixLetters [1000]int
)

func init() {
	for d := range prefixes {
		prefixes[d] = buildPrefix(d)
		prefixLetters[d] = len(prefixes[d]) + len("illi")
	}
}

// buildPrefix assembles the Conway–Wechsler prefix for one base-1000
// digit of a zillion index.
func buildPrefix(d int) string {
	if d < 10 {
		return smallPrefixes[d]
	}

	unit := d % 10
	tens := tensComponents[(d/10)%10]
	hundreds := hundredComponents[d/100]

	part := unitComponents[unit]
	if unit > 0 {
		// The unit assimilates against the first following component.
		markers := tens.markers
		if tens.word == "" {
			markers = hundreds.markers
		}
		part += assimilate(unit, markers)
	}
	part += tens.word + hundreds.word

	// The final vowel is elided before "illi".
	return strings.TrimRight(part, "aeiou")
}

// assimilate returns the letter a unit component gains before a
// component carrying the given markers: tre→tres before s/x, se→ses/sex,
// septe/nove→septem/novem before m and septen/noven before n.
func assimilate(unit int, markers string) string {
	switch unit {
	case 3: // tre
		if strings.ContainsAny(markers, "sx") {
			return "s"
		}
	case 6: // se
		if strings.Contains(markers, "s") {
			return "s"
		}
		if strings.Contains(markers, "x") {
			return "x"
		}
	case 7, 9: // septe, nove
		if strings.Contains(markers, "m") {
			return "m"
		}
		if strings.Contains(markers, "n") {
			return "n"
		}
	}

	return ""
}

// Prefix returns the Conway–Wechsler prefix for one base-1000 digit d
// of a zillion index, without the "illi" tail: Prefix(1) = "m",
// Prefix(0) = "n" (the "nilli" filler), Prefix(103) = "trescent".
func Prefix(d int) string { return prefixes[d] }

// PrefixLetters returns len(Prefix(d) + "illi"), the letters one digit
// of a zillion index contributes to a scale name before the final "on".
func PrefixLetters(d int) int { return prefixLetters[d] }
