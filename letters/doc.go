// Package letters counts the letters in a number's fully spelled-out
// English numeral, directly from its compressed period representation.
//
// 🚀 How it counts
//
//	A numeral's letters split into two independent sums:
//	  • PeriodValues — letters spelling each period value
//	    ("three hundred seventy-three …"), a straight sum of
//	    repeat × letters(value) over the runs.
//	  • PeriodNames — letters spelling the scale names
//	    ("… million … thousand"). One scale name exists per zillion
//	    position, so for a number with 10^90 periods the names cannot
//	    be enumerated; instead the digits of every zillion index in
//	    range are counted with digits.Occurs and weighted by the
//	    Conway–Wechsler prefix length of each base-1000 digit, plus
//	    the fixed "on" tail per position and the irregular "thousand"
//	    delta when the range spans position 0. Zero-valued runs speak
//	    no scale name; the same range sum over their span is
//	    subtracted.
//
// ✨ Result type
//
//	Letter counts are themselves astronomically large for large
//	inputs, so InName returns *big.Int and NameLength wraps the count
//	back into a *pnum.PNumber — the form the inverse search compares
//	against without ever materializing digits.
//
// ⚙️ Usage:
//
//	n, _ := pnum.FromInt64(1000000)     // "one million"
//	letters.InName(n)                   // 10
//
// Complexity: O(runs + 1000·log(zillion)) big-integer operations.
package letters
