package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zillionlab/fourchain/lexicon"
)

// TestName_Spelling spot-checks numeral spelling across the hundreds,
// teens, round tens and hyphenated forms.
func TestName_Spelling(t *testing.T) {
	cases := map[int]string{
		0:   "",
		1:   "one",
		4:   "four",
		13:  "thirteen",
		20:  "twenty",
		21:  "twenty-one",
		100: "one hundred",
		101: "one hundred one",
		123: "one hundred twenty-three",
		323: "three hundred twenty-three",
		373: "three hundred seventy-three",
		600: "six hundred",
		999: "nine hundred ninety-nine",
	}
	for v, want := range cases {
		assert.Equal(t, want, lexicon.Name(v), "Name(%d)", v)
	}
}

// TestNameLetters_CountsAlphaOnly verifies hyphens and spaces never
// count and pins the values the searches lean on.
func TestNameLetters_CountsAlphaOnly(t *testing.T) {
	assert.Equal(t, 0, lexicon.NameLetters(0))
	assert.Equal(t, 3, lexicon.NameLetters(1), "one")
	assert.Equal(t, 4, lexicon.NameLetters(4), "four")
	assert.Equal(t, 3, lexicon.NameLetters(10), "ten")
	assert.Equal(t, 9, lexicon.NameLetters(21), "twentyone")
	assert.Equal(t, 23, lexicon.NameLetters(323))
	assert.Equal(t, 24, lexicon.NameLetters(373))

	// 373 is the unique maximum below one thousand.
	for v := 0; v < 1000; v++ {
		if v == 373 {
			continue
		}
		assert.Less(t, lexicon.NameLetters(v), 24, "NameLetters(%d)", v)
	}
}

// TestLetters ignores everything but ASCII letters.
func TestLetters(t *testing.T) {
	assert.Equal(t, 0, lexicon.Letters(""))
	assert.Equal(t, 0, lexicon.Letters("123 - 456"))
	assert.Equal(t, 8, lexicon.Letters("twenty-one 7"))
	assert.Equal(t, 4, lexicon.Letters(lexicon.Zero))
	assert.Equal(t, 8, lexicon.Letters(lexicon.Thousand))
}

// TestPrefix_ConwayWechsler checks assembled prefixes against known
// forms, including each assimilation rule and the vowel elision.
func TestPrefix_ConwayWechsler(t *testing.T) {
	cases := map[int]string{
		0:   "n",
		1:   "m",
		2:   "b",
		3:   "tr",
		9:   "non",
		10:  "dec",
		16:  "sedec",
		21:  "unvigint",
		23:  "tresvigint",
		26:  "sesvigint",
		28:  "octovigint",
		87:  "septemoctogint",
		100: "cent",
		103: "trescent",
		106: "sexcent",
		807: "septemoctingent",
		999: "novenonagintanongent",
	}
	for d, want := range cases {
		assert.Equal(t, want, lexicon.Prefix(d), "Prefix(%d)", d)
	}
}

// TestPrefixLetters is Prefix length plus the "illi" tail.
func TestPrefixLetters(t *testing.T) {
	assert.Equal(t, 5, lexicon.PrefixLetters(0), "nilli")
	assert.Equal(t, 5, lexicon.PrefixLetters(1), "milli")
	assert.Equal(t, 8, lexicon.PrefixLetters(100), "centilli")
	for d := 0; d < 1000; d++ {
		assert.Equal(t, len(lexicon.Prefix(d))+4, lexicon.PrefixLetters(d))
	}
}
