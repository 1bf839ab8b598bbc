package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-echo/dsp/core"
	"github.com/cwbudde/algo-echo/dsp/series"
	dspsignal "github.com/cwbudde/algo-echo/dsp/signal"
	"github.com/cwbudde/algo-echo/dsp/spectrum"
	"github.com/cwbudde/algo-echo/stats/wavestats"
	"github.com/cwbudde/algo-echo/waveform/echo"
	"github.com/cwbudde/algo-echo/waveform/waveio"
)

var (
	errNoInput         = errors.New("no input files and no -synth source")
	errDuplicateOutput = errors.New("output path collides with an input or another output")
)

type runConfig struct {
	inputs []string
	out    string

	synth    string
	freq     float64
	rate     float64
	duration float64

	peak float64
	pad  float64

	params       echo.Params
	timestep     float64
	withOriginal bool

	workers  int
	spectrum bool
}

// job is one waveform pair to process.
type job struct {
	name string
	out  string
	load func() (plus, cross series.TimeSeries, err error)
}

func run(ctx context.Context, cfg runConfig, log *zap.Logger) error {
	if err := cfg.params.Validate(); err != nil {
		return err
	}

	jobs, err := buildJobs(cfg)
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", cfg.workers),
		zap.Int("echoes", cfg.params.NEchoes),
	)

	opts := echoOptions(cfg, log)

	return runJobs(ctx, jobs, cfg.workers, func(ctx context.Context, j job) error {
		return process(ctx, j, cfg, opts, log.With(zap.String("input", j.name)))
	})
}

func buildJobs(cfg runConfig) ([]job, error) {
	if cfg.synth != "" {
		if len(cfg.inputs) > 0 {
			return nil, errors.New("-synth cannot be combined with input files")
		}

		out := cfg.out
		if out == "" {
			out = "synth-" + cfg.synth + ".echoes.csv"
		}

		return []job{{
			name: "synth:" + cfg.synth,
			out:  out,
			load: func() (series.TimeSeries, series.TimeSeries, error) {
				return synthesize(cfg)
			},
		}}, nil
	}

	if len(cfg.inputs) == 0 {
		return nil, errNoInput
	}

	jobs := make([]job, 0, len(cfg.inputs))
	multi := len(cfg.inputs) > 1

	inputs := make(map[string]bool, len(cfg.inputs))
	for _, in := range cfg.inputs {
		inputs[filepath.Clean(in)] = true
	}

	owner := make(map[string]string, len(cfg.inputs))

	for _, in := range cfg.inputs {
		if waveio.FormatOf(in) == waveio.FormatUnknown {
			return nil, fmt.Errorf("%s: %w", in, waveio.ErrUnsupportedFormat)
		}

		path := in
		out := outputPath(path, cfg.out, multi)

		key := filepath.Clean(out)
		if prev, ok := owner[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", errDuplicateOutput, prev, path, out)
		}
		if inputs[key] {
			return nil, fmt.Errorf("%w: %s would overwrite input %s", errDuplicateOutput, path, out)
		}
		owner[key] = path

		jobs = append(jobs, job{
			name: path,
			out:  out,
			load: func() (series.TimeSeries, series.TimeSeries, error) {
				return waveio.Read(path)
			},
		})
	}

	return jobs, nil
}

func synthesize(cfg runConfig) (plus, cross series.TimeSeries, err error) {
	samples := int(cfg.duration * cfg.rate)
	gen := dspsignal.NewGenerator(core.WithSampleRate(cfg.rate))

	switch cfg.synth {
	case "sine":
		return gen.SinusoidPair(cfg.freq, 1, samples)
	case "chirp":
		return gen.Chirp(dspsignal.ChirpParams{
			StartHz:     cfg.freq / 8,
			PeakHz:      cfg.freq,
			Amplitude:   1,
			MergerAt:    0.75 * cfg.duration,
			RingdownTau: 4 / cfg.freq,
		}, samples)
	default:
		return plus, cross, fmt.Errorf("unknown -synth source %q (want chirp or sine)", cfg.synth)
	}
}

// prepare applies the -pad and -peak conditioning to a loaded pair.
func prepare(plus, cross series.TimeSeries, cfg runConfig) (series.TimeSeries, series.TimeSeries, error) {
	if cfg.pad < 0 {
		return plus, cross, fmt.Errorf("-pad must be >= 0: %g", cfg.pad)
	}

	if n := int(math.Round(cfg.pad / plus.DeltaT)); n > 0 {
		var err error
		if plus, err = dspsignal.ZeroPad(plus, n, n); err != nil {
			return plus, cross, err
		}
		if cross, err = dspsignal.ZeroPad(cross, n, n); err != nil {
			return plus, cross, err
		}
	}

	if cfg.peak > 0 {
		return dspsignal.NormalizePair(plus, cross, cfg.peak)
	}

	return plus, cross, nil
}

// outputPath places the result of in. With an empty out the result lands
// beside the input; a directory out (or several inputs) keeps the input's
// base name.
func outputPath(in, out string, multi bool) string {
	dir, base := filepath.Split(in)

	ext := filepath.Ext(base)
	if strings.EqualFold(ext, ".zst") {
		ext = filepath.Ext(strings.TrimSuffix(base, ext)) + ext
	}
	name := strings.TrimSuffix(base, ext) + ".echoes" + ext

	switch {
	case out == "":
		return filepath.Join(dir, name)
	case multi || strings.HasSuffix(out, string(filepath.Separator)) || isDir(out):
		return filepath.Join(out, name)
	default:
		return out
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// runJobs calls fn for every job with at most workers calls in flight and
// returns every failure combined.
func runJobs(ctx context.Context, jobs []job, workers int, fn func(context.Context, job) error) error {
	if workers < 1 {
		workers = 1
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)

	sem := make(chan struct{}, workers)

loop:
	for _, j := range jobs {
		select {
		case <-ctx.Done():
			mu.Lock()
			errs = multierr.Append(errs, ctx.Err())
			mu.Unlock()
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := fn(ctx, j); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", j.name, err))
				mu.Unlock()
			}
		}(j)
	}

	wg.Wait()

	return errs
}

func process(ctx context.Context, j job, cfg runConfig, opts []echo.Option, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	plus, cross, err := j.load()
	if err != nil {
		return err
	}

	plus, cross, err = prepare(plus, cross, cfg)
	if err != nil {
		return err
	}

	res, err := echo.AddEchoes(plus, cross, cfg.params, opts...)
	if err != nil {
		return err
	}

	inStats, err := wavestats.Calculate(plus, cross)
	if err != nil {
		return err
	}
	outStats, err := wavestats.Calculate(res.Plus, res.Cross)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Int("input_samples", plus.Len()),
		zap.Float64("sample_rate", plus.SampleRate()),
		zap.Float64("input_end", plus.EndTime()),
		zap.Int("output_samples", res.Plus.Len()),
		zap.Float64("output_end", res.Plus.EndTime()),
		zap.Float64("merger_time", res.MergerTime),
		zap.Ints("offsets", res.Offsets),
		zap.Float64("peak_db", outStats.Peak_dB),
		zap.Float64("peak_time", outStats.PeakTime),
		zap.Float64("energy_ratio", wavestats.EnergyRatio(outStats, inStats)),
		zap.Int("warnings", len(res.Warnings)),
	}

	if cfg.spectrum {
		freq, amp, err := spectrum.PeakFrequency(res.Plus.Data, res.Plus.DeltaT)
		if err != nil {
			log.Warn("spectrum unavailable", zap.Error(err))
		} else {
			fields = append(fields, zap.Float64("dominant_hz", freq), zap.Float64("dominant_amp", amp))
		}
	}

	if err := waveio.Write(j.out, res.Plus, res.Cross); err != nil {
		return err
	}

	log.Info("echoes written", append(fields, zap.String("output", j.out))...)

	return nil
}
