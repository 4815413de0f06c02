package chain

import (
	"fmt"

	"github.com/zillionlab/fourchain/letters"
	"github.com/zillionlab/fourchain/pnum"
	"github.com/zillionlab/fourchain/search"
)

// Forward applies the letter-counting map to root until it reaches the
// fixed point 4, returning every element visited, root first. limit
// caps the number of applications; a chain still short of 4 at the
// limit returns ErrChainLength.
func Forward(root *pnum.PNumber, limit int) ([]*pnum.PNumber, error) {
	four := mustFrom(4)

	result := []*pnum.PNumber{root}
	current := root
	for !current.Equal(four) {
		if len(result) > limit {
			return nil, fmt.Errorf("forward chain from %s: %w", root, ErrChainLength)
		}
		current = letters.NameLength(current)
		result = append(result, current)
	}

	return result, nil
}

// First builds the first (lexicographically smallest) inverse chain of
// the given length: root, then repeatedly the smallest number whose
// name has as many letters as the previous element's value.
func First(length int, root *pnum.PNumber) ([]*pnum.PNumber, error) {
	if length < 1 {
		return nil, nil
	}

	result := make([]*pnum.PNumber, 0, length)
	result = append(result, root)
	for i := 1; i < length; i++ {
		next, err := search.Smallest(result[i-1])
		if err != nil {
			return nil, fmt.Errorf("inverse chain element %d: %w", i, err)
		}
		result = append(result, next)
	}

	return result, nil
}

// Ranked returns the rank-th inverse chain of the given length,
// enumerating chains breadth-first from the fixed point 4 and ordering
// each generation by the value of its newest element. Rank is 1-based;
// a (length, rank) pair with no chain returns ErrChainRank.
func Ranked(length, rank int) ([]*pnum.PNumber, error) {
	if length < 1 || rank < 1 {
		return nil, fmt.Errorf("chain[%d][%d]: %w", length, rank, ErrChainRank)
	}

	thisRank := [][]*pnum.PNumber{{mustFrom(4)}}
	for anyShorter(thisRank, length) {
		var nextRank [][]*pnum.PNumber
		for _, this := range thisRank {
			child, err := search.Smallest(this[len(this)-1])
			for count := 0; err == nil && count < rank; count++ {
				nextRank = insertByTail(nextRank, extend(this, child))
				child, err = search.Next(child)
			}
		}

		// A generation with no first-children can still advance by
		// bumping each chain's tail to its successor.
		if len(nextRank) == 0 {
			for _, this := range thisRank {
				child, err := search.Next(this[len(this)-1])
				if err != nil {
					continue
				}
				nextRank = insertByTail(nextRank, replaceTail(this, child))
			}
			if len(nextRank) == 0 {
				return nil, fmt.Errorf("chain[%d][%d]: %w", length, rank, ErrChainRank)
			}
		}

		if len(nextRank) > rank {
			nextRank = nextRank[:rank]
		}
		thisRank = nextRank
	}

	if len(thisRank) < rank {
		return nil, fmt.Errorf("chain[%d][%d]: %w", length, rank, ErrChainRank)
	}

	return thisRank[rank-1], nil
}

func anyShorter(chains [][]*pnum.PNumber, length int) bool {
	for _, c := range chains {
		if len(c) < length {
			return true
		}
	}

	return false
}

// insertByTail keeps the generation sorted ascending by newest element.
func insertByTail(chains [][]*pnum.PNumber, c []*pnum.PNumber) [][]*pnum.PNumber {
	tail := c[len(c)-1]
	i := 0
	for ; i < len(chains); i++ {
		if tail.Cmp(chains[i][len(chains[i])-1]) < 0 {
			break
		}
	}

	chains = append(chains, nil)
	copy(chains[i+1:], chains[i:])
	chains[i] = c

	return chains
}

func extend(c []*pnum.PNumber, tail *pnum.PNumber) []*pnum.PNumber {
	out := make([]*pnum.PNumber, len(c)+1)
	copy(out, c)
	out[len(c)] = tail

	return out
}

func replaceTail(c []*pnum.PNumber, tail *pnum.PNumber) []*pnum.PNumber {
	out := make([]*pnum.PNumber, len(c))
	copy(out, c)
	out[len(out)-1] = tail

	return out
}

func mustFrom(v int64) *pnum.PNumber {
	n, err := pnum.FromInt64(v)
	if err != nil {
		panic(err)
	}

	return n
}
