package echo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for echo parameters or timesteps
	// outside their valid domain.
	ErrInvalidParameter = errors.New("invalid echo parameter")
	// ErrDegenerateInput is returned when the input has no usable signal:
	// an all-zero channel or fewer than two samples to estimate from.
	ErrDegenerateInput = errors.New("degenerate waveform input")
	// ErrBufferOverrun is returned when an echo would be written outside the
	// allocated output buffer.
	ErrBufferOverrun = errors.New("echo exceeds output buffer")
)

// WarningKind classifies a recoverable input anomaly.
type WarningKind int

const (
	// WarningUnequalLeadingZeros means the plus and cross channels start with
	// zero runs of different length. The longer run is used as the padding
	// boundary.
	WarningUnequalLeadingZeros WarningKind = iota + 1
)

// String returns the warning kind's name.
func (k WarningKind) String() string {
	switch k {
	case WarningUnequalLeadingZeros:
		return "unequal-leading-zeros"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a non-fatal diagnostic produced during synthesis.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}
