package search

// keyPeriods maps a letter count to the most letter-efficient period
// value spelling exactly that many letters. Derived by exhaustive
// brute force over numerals below one thousand; treat as opaque.
var keyPeriods = map[int]int{
	3:  1,   // one
	4:  4,   // four
	5:  3,   // three
	6:  11,  // eleven
	7:  15,  // fifteen
	8:  13,  // thirteen
	9:  17,  // seventeen
	10: 24,  // twenty-four
	11: 23,  // twenty-three
	12: 73,  // seventy-three
	13: 101, // one hundred one
	14: 104, // one hundred four
	15: 103, // one hundred three
	16: 111, // one hundred eleven
	17: 115, // one hundred fifteen
	18: 113, // one hundred thirteen
	19: 117, // one hundred seventeen
	20: 124, // one hundred twenty-four
	21: 123, // one hundred twenty-three
	22: 173, // one hundred seventy-three
	23: 323, // three hundred twenty-three
	24: 373, // three hundred seventy-three
}

// keyPeriodLetters bounds the keyPeriods domain; candidates are tried
// in ascending letter count.
const (
	minKeyLetters = 3
	maxKeyLetters = 24
)

// keyPeriodExceptions overrides keyPeriods for numbers with more than
// two periods: each key has a smaller alternate value spelling one
// letter more ("four" > "three" in value order but shorter by a
// letter), compensated by swapping one trailing 373-period for 323.
var keyPeriodExceptions = map[int]int{
	4:   3,   // four < three
	15:  13,  // fifteen < thirteen
	24:  23,  // twenty-four < twenty-three
	104: 103, // one hundred four < one hundred three
	115: 113, // one hundred fifteen < one hundred thirteen
	124: 123, // one hundred twenty-four < one hundred twenty-three
}

// largestSmallTargets maps target letter counts below 10 to the
// largest integer with that name length; brute-force derived.
var largestSmallTargets = map[int64]int64{
	3: 10, // ten
	4: 9,  // nine
	5: 60, // sixty
	6: 90, // ninety
	7: 70, // seventy
	8: 66, // sixty-six
	9: 96, // ninety-six
}
