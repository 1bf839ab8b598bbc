package waveio

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/dsp/series"
)

const (
	// gridTolerance bounds the deviation of a time value from
	// epoch + i*deltaT, in units of deltaT.
	gridTolerance = 1e-6
	// roundingSlack is the number of float64 ulps of the largest time value
	// additionally tolerated.
	roundingSlack = 8
)

// Row is one sample of a waveform pair.
type Row struct {
	Time  float64 `parquet:"time"`
	Plus  float64 `parquet:"plus"`
	Cross float64 `parquet:"cross"`
}

// Rows flattens a validated pair into one Row per sample.
func Rows(plus, cross series.TimeSeries) ([]Row, error) {
	if err := series.ValidatePair(plus, cross); err != nil {
		return nil, err
	}

	rows := make([]Row, plus.Len())
	for i := range rows {
		rows[i] = Row{Time: plus.TimeAt(i), Plus: plus.Data[i], Cross: cross.Data[i]}
	}

	return rows, nil
}

// FromRows rebuilds a pair from rows on a uniform time grid. The spacing is
// taken from the first and last rows, and every row must lie within
// gridTolerance*DeltaT (plus float64 rounding of the time values) of
// epoch + i*DeltaT.
func FromRows(rows []Row) (plus, cross series.TimeSeries, err error) {
	if len(rows) < 2 {
		return plus, cross, fmt.Errorf("%w: got %d", ErrTooFewRows, len(rows))
	}

	first, last := rows[0].Time, rows[len(rows)-1].Time
	dt := (last - first) / float64(len(rows)-1)

	if !(dt > 0) || math.IsInf(dt, 0) {
		return plus, cross, fmt.Errorf("waveio: spacing %g: %w", dt, series.ErrInvalidSpacing)
	}

	tol := gridTolerance*dt + roundingSlack*ulp(math.Max(math.Abs(first), math.Abs(last)))

	p := make([]float64, len(rows))
	c := make([]float64, len(rows))

	for i, r := range rows {
		want := first + float64(i)*dt
		if !(math.Abs(r.Time-want) <= tol) {
			return plus, cross, fmt.Errorf("%w: row %d has time %g, expected %g", ErrNonUniform, i, r.Time, want)
		}

		p[i] = r.Plus
		c[i] = r.Cross
	}

	return series.New(p, dt, first), series.New(c, dt, first), nil
}

// ulp returns the spacing between x and the next larger float64.
func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}
