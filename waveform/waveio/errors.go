package waveio

import "errors"

var (
	// ErrTooFewRows is returned when a file holds fewer than two samples,
	// which leaves the sample spacing undefined.
	ErrTooFewRows = errors.New("waveio: at least two rows are required")
	// ErrNonUniform is returned when time values do not follow a uniform grid.
	ErrNonUniform = errors.New("waveio: time column is not uniformly spaced")
	// ErrBadHeader is returned when a CSV header does not name time, plus and cross.
	ErrBadHeader = errors.New("waveio: csv header must be time,plus,cross")
	// ErrUnsupportedFormat is returned for a path whose extension is unknown.
	ErrUnsupportedFormat = errors.New("waveio: unsupported file format")
)
