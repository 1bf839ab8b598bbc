package series

import "errors"

var (
	// ErrEmptyInput is returned when a series has no samples.
	ErrEmptyInput = errors.New("series must not be empty")
	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("series lengths differ")
	// ErrSpacingMismatch is returned when paired series differ in sample spacing.
	ErrSpacingMismatch = errors.New("series sample spacings differ")
	// ErrInvalidSpacing is returned for a non-positive or non-finite DeltaT.
	ErrInvalidSpacing = errors.New("series sample spacing must be > 0")
	// ErrNonFinite is returned when a series holds a NaN or infinite sample.
	ErrNonFinite = errors.New("series holds a non-finite sample")
)
