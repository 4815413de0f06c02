// Package pnum implements PNumber, a run-length-compressed base-1000
// representation of nonnegative integers of arbitrary magnitude.
//
// 🚀 What is a PNumber?
//
//	A number is split into base-1000 digit groups ("periods", the
//	groups named thousand, million, billion, …) and stored as an
//	ordered sequence of (value, repeat) runs:
//
//	    123 000 000 000  →  [(123, 1), (0, 3)]
//
//	Repeat counts are big integers, so a PNumber can describe numbers
//	like 373·(1000^(10^90)−1)/999 in two machine words of structure —
//	numbers whose digit strings could never be materialized.
//
// ✨ Key operations:
//   - Construct from an integer (FromInt64, FromBig), an abbreviation
//     string (Parse — "123[456]{2}"), or explicit periods (FromPeriods).
//   - Positional edits (Append, Prepend, Insert) and scale-addressed
//     injection (Inject), all re-normalized on return: adjacent runs of
//     equal value merge, zero-repeat runs vanish.
//   - Total order (Cmp) consistent with integer magnitude.
//   - Exact materialization (Int) with a resource advisory above a
//     configurable period threshold, and a lossy O(k) scientific-style
//     approximation (Approximate).
//
// ⚙️ Usage:
//
//	n, _ := pnum.Parse("12345[678]{9}000")
//	n.Zillion()     // 11 — most significant named scale index
//	n.String()      // "12345[678]{9}000"
//
// The abbreviation grammar: a component is exactly three decimal
// digits (one period), or "[PPP]{R}" (value PPP repeated R times), or —
// only at the very start — a run of one or two digits. Anything else
// is a format error naming the offending segment.
//
// PNumber is not safe for concurrent mutation; all operations are
// deterministic pure computation.
package pnum
