package echo

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-echo/dsp/series"
	"github.com/cwbudde/algo-vecmath"
)

// Result is the output of [AddEchoes] plus the intermediate quantities that
// shaped it.
type Result struct {
	// Plus and Cross hold the echo train sampled at the output timestep,
	// each starting at its input's first sample time.
	Plus, Cross series.TimeSeries
	// MergerTime and MergerIndex locate the peak of the input magnitude.
	MergerTime  float64
	MergerIndex int
	// Frequency is the angular frequency used by the taper, one value per
	// input sample.
	Frequency []float64
	// Taper holds the window applied to the input to form the echo seed.
	Taper   []float64
	Offsets []int
	Scales  []float64
	// Warnings lists recoverable input anomalies.
	Warnings []Warning
}

// AddEchoes tapers the polarization pair around its merger and returns the
// train of p.NEchoes delayed, damped, sign-alternating copies.
//
// The output is len(plus) + p.ExtraSamples(timestep) samples long. The
// timestep defaults to plus.DeltaT and can be overridden with
// [WithTimestep]; the seed is placed sample for sample without resampling.
func AddEchoes(plus, cross series.TimeSeries, p Params, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)
	log := cfg.logger

	if err := series.ValidatePair(plus, cross); err != nil {
		return Result{}, err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	timestep := cfg.resolveTimestep(plus.DeltaT)
	if err := validateTimestep(timestep); err != nil {
		return Result{}, err
	}
	if _, err := p.OutputLen(plus.Len(), timestep); err != nil {
		return Result{}, err
	}

	tMerger, mergerIdx, err := MergerTime(plus, cross)
	if err != nil {
		return Result{}, err
	}

	est, err := AngularFrequency(plus, cross)
	if err != nil {
		return Result{}, err
	}
	for _, w := range est.Warnings {
		log.Warn("waveform anomaly",
			zap.Stringer("kind", w.Kind),
			zap.String("detail", w.Message),
			zap.Int("leading_plus", est.LeadingPlus),
			zap.Int("leading_cross", est.LeadingCross),
		)
	}

	coeffs, err := TaperCoefficients(plus.SampleTimes(), p.T0Trunc, tMerger, est.Omega)
	if err != nil {
		return Result{}, err
	}
	seedPlus, seedCross, err := ApplyTaper(plus.Data, cross.Data, coeffs)
	if err != nil {
		return Result{}, err
	}

	train, err := Superpose(seedPlus, seedCross, p, timestep)
	if err != nil {
		return Result{}, err
	}
	if cfg.withOriginal {
		vecmath.AddBlockInPlace(train.Plus[:plus.Len()], plus.Data)
		vecmath.AddBlockInPlace(train.Cross[:cross.Len()], cross.Data)
	}

	log.Debug("echoes added",
		zap.Float64("merger_time", tMerger),
		zap.Int("merger_index", mergerIdx),
		zap.Int("echoes", p.NEchoes),
		zap.Ints("offsets", train.Offsets),
		zap.Int("input_samples", plus.Len()),
		zap.Int("output_samples", len(train.Plus)),
		zap.Float64("timestep", timestep),
	)

	return Result{
		Plus:        series.New(train.Plus, timestep, plus.Epoch),
		Cross:       series.New(train.Cross, timestep, cross.Epoch),
		MergerTime:  tMerger,
		MergerIndex: mergerIdx,
		Frequency:   est.Omega,
		Taper:       coeffs,
		Offsets:     train.Offsets,
		Scales:      train.Scales,
		Warnings:    est.Warnings,
	}, nil
}
