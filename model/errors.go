package model

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for caller contract violations such as
	// out-of-bounds coordinates or non-positive grid dimensions
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation signals a bug in the generation advance, never bad input
	ErrInvariantViolation = errors.New("internal invariant violated")
)
