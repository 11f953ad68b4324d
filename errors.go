package recur

import (
	"errors"
)

// Error kinds. Every error returned by this package wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrNonAdvancingPeriod = errors.New("period is negative or zero")
	ErrMalformedDate      = errors.New("malformed date")
	ErrIO                 = errors.New("i/o failure")
)
