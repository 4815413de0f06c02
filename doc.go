// Package fourchain computes name-length chains: replace a number with
// the count of letters in its fully spelled-out English numeral and
// repeat — every positive integer ends at 4, because "four" has four
// letters.
//
// 🚀 What is fourchain?
//
//	A library and CLI for exploring that map in both directions:
//		• Letter counting: how many letters in the name of n, for any n
//		• Inverse search: the smallest (or largest) n with a given count
//		• Chains: forward to the fixed point, or inverse and unbounded
//
// ✨ Why compressed numbers?
//
//   - Inverse chains explode: four steps up from 4 already needs a
//     number with hundreds of digits, and it only gets worse
//   - PNumber stores base-1000 digit groups run-length compressed, so
//     a number with a septillion repeating periods costs two runs
//   - Letter counting works directly on the runs in O(periods · log),
//     never on the expanded digits
//
// Everything is organized under six subpackages:
//
//	digits/  — positional digit arithmetic: Rebase and the Occurs count
//	lexicon/ — English numerals and Conway–Wechsler scale prefixes
//	pnum/    — the compressed PNumber type and its abbreviation codec
//	letters/ — letter counting over compressed numbers
//	search/  — Smallest, Largest and Next inverse searches
//	chain/   — Forward, First and Ranked chain iteration
//
// Quick example:
//
//	373 → 24 → 10 → 3 → 5 → 4
//
//	"three hundred seventy-three" has 24 letters, "twenty-four" has
//	ten, and five steps land on the fixed point.
//
//	go get github.com/zillionlab/fourchain
package fourchain
