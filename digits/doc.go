// Package digits provides arbitrary-base digit arithmetic and
// digit-frequency counting over integer ranges.
//
// 🚀 What is digits?
//
//	Two primitives that the rest of fourchain is built on:
//	  • Rebase — decompose an integer into (coefficient, power) digit
//	    pairs in any base, most significant first.
//	  • Occurs — count how many times a digit appears among all
//	    integers of a range written in a given base, in closed form.
//
// ✨ Why closed form?
//
//	Occurs answers questions like "how many base-1000 digits equal to
//	373 appear below 10^90?" in O(log limit) big-integer operations —
//	no enumeration. That is what lets name-length counting scale to
//	numbers whose zillion index is itself astronomically large.
//
// ⚙️ Usage:
//
//	import "github.com/zillionlab/fourchain/digits"
//
//	digits.Rebase(big.NewInt(123456789), 1000)
//	// → [{123 2} {456 1} {789 0}]
//
//	digits.Occurs(0, big.NewInt(100), nil, 10)
//	// → 10 (zeros written in 0..99)
//
// Performance:
//
//   - Rebase: O(d²) big-integer work for d = log_base(decimal) digits.
//   - Occurs: O(d) iterations over Rebase(limit), each O(1) big ops.
//
// All functions are pure; inputs are never mutated.
package digits
