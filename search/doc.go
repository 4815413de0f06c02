// Package search inverts the name-length function: given a target
// letter count, it finds the smallest (or largest) integer whose fully
// spelled-out English numeral has exactly that many letters.
//
// 🚀 How Smallest works
//
//	"three hundred seventy-three" is the most letter-efficient
//	three-digit period value (24 letters). Smallest grows a pure run
//	of 373-periods by doubling its repeat count until its name length
//	reaches the target, binary-searches the repeat count to the exact
//	boundary, then corrects the remaining shortfall: leading "one"
//	periods (each worth 21 letters less than a 373-period), a single
//	remainder period chosen from a key table, and — for the handful of
//	English irregularities where a smaller value spells one letter
//	longer ("three" vs "four", "thirteen" vs "fifteen") — an exception
//	substitution absorbed by an auxiliary 323-period.
//
//	All comparisons happen in the compressed PNumber domain, so a
//	target that is itself an astronomically large number never
//	materializes.
//
// ✨ Also here:
//   - Largest — closed-form case analysis on (target − 5) mod 5
//     against scale-prefix lengths; best-effort for extreme targets.
//   - Next — the next-largest number sharing a name length, used by
//     ranked chain enumeration.
//
// ⚙️ Usage:
//
//	target, _ := pnum.FromInt64(323)
//	n, _ := search.Smallest(target)
//	n.String() // "1103323[373]{8}"
//
// The key-period and exception tables encode irregularities of English
// numeral lengths; they are opaque, brute-force-derived lookups.
//
// Every search brackets and terminates: name length grows without
// bound and monotonically in the repeat count of a trailing run.
package search
