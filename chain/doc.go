// Package chain iterates name-length chains: sequences where each step
// applies the letter-counting map or its inverse search.
//
// 🚀 Three chain shapes
//
//   - Forward — repeatedly replace n with the letter count of its
//     spelled-out numeral. Every positive integer converges to the
//     fixed point 4 ("four" has four letters), so a forward chain is
//     finite: 373 → 24 → 10 → 3 → 5 → 4.
//   - First — the inverse chain: each next element is the smallest
//     number whose numeral has exactly as many letters as the previous
//     element's value. Growing this chain inverts the convergence, so
//     elements get astronomically large fast.
//   - Ranked — breadth-first enumeration of all inverse chains of a
//     given length, ordered by the compressed-number total order, so
//     chain rank 1 ends in the smallest possible tail.
//
// ✨ Example
//
//	root, _ := pnum.FromInt64(21)
//	c, _ := chain.First(3, root)
//	// 21 <- 123 <- 1113[373]{3}
//
// ⚙️ All elements stay in the compressed PNumber domain; nothing is
// materialized, so chain elements may exceed any machine integer.
package chain
