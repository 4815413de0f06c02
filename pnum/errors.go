package pnum

import "errors"

var (
	// ErrPeriodValue indicates a period value outside [0, 1000).
	ErrPeriodValue = errors.New("pnum: period value must be in range [0, 1000)")

	// ErrPeriodRepeat indicates a negative period repeat count.
	ErrPeriodRepeat = errors.New("pnum: period repeat must be non-negative")

	// ErrNegative indicates an attempt to represent a negative number.
	ErrNegative = errors.New("pnum: number must be non-negative")

	// ErrBadAbbreviation indicates malformed abbreviation text; the
	// wrapped message names the offending segment.
	ErrBadAbbreviation = errors.New("pnum: invalid abbreviation segment")

	// ErrIndex indicates a period index outside the current sequence.
	ErrIndex = errors.New("pnum: period index out of range")
)
