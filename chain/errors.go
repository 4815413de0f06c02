package chain

import "errors"

var (
	// ErrChainLength is returned by Forward when the chain does not
	// reach the fixed point within the step limit.
	ErrChainLength = errors.New("chain: step limit reached before fixed point")

	// ErrChainRank is returned by Ranked when no chain of the requested
	// length and rank exists.
	ErrChainRank = errors.New("chain: requested chain does not exist")
)
