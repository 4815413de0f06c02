package chain_test

import (
	"fmt"
	"strings"

	"github.com/zillionlab/fourchain/chain"
	"github.com/zillionlab/fourchain/pnum"
)

// ExampleForward follows a number down the letter-count map to the
// fixed point.
func ExampleForward() {
	root, _ := pnum.FromInt64(373)

	c, _ := chain.Forward(root, 10)
	for _, n := range c {
		fmt.Println(n)
	}
	// Output:
	// 373
	// 24
	// 10
	// 3
	// 5
	// 4
}

// ExampleFirst climbs the inverse direction: each element is the
// smallest number whose name length equals the previous element.
func ExampleFirst() {
	root, _ := pnum.FromInt64(21)

	c, _ := chain.First(3, root)
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = n.String()
	}
	fmt.Println(strings.Join(parts, " <- "))
	// Output:
	// 21 <- 123 <- 1113[373]{3}
}

// ExampleRanked enumerates inverse chains from the fixed point in
// tail order.
func ExampleRanked() {
	for rank := 1; rank <= 2; rank++ {
		c, _ := chain.Ranked(3, rank)
		parts := make([]string, len(c))
		for i, n := range c {
			parts[i] = n.String()
		}
		fmt.Println(strings.Join(parts, " <- "))
	}
	// Output:
	// 4 <- 5 <- 3
	// 4 <- 5 <- 7
}
