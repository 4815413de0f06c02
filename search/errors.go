package search

import "errors"

var (
	// ErrTargetTooShort indicates a target below 3: no English numeral
	// has fewer than three letters.
	ErrTargetTooShort = errors.New("search: no number name shorter than 3 letters")

	// ErrTargetTooLarge indicates a Largest target whose zero-run
	// repeat count cannot be represented in memory.
	ErrTargetTooLarge = errors.New("search: target too large for largest-number analysis")

	// ErrNoSuccessor indicates that no larger number shares the name
	// length of the given one.
	ErrNoSuccessor = errors.New("search: no larger number shares the name length")
)
