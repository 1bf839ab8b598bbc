// Command echogen adds a train of gravitational-wave echoes to waveform files.
//
// Usage:
//
//	echogen [flags] [input ...]
//
// Each input is a CSV (optionally .csv.zst) or Parquet file with time, plus
// and cross columns. Inputs are processed concurrently and each result is
// written next to its input as <name>.echoes.<ext>, or into -out.
//
// Examples:
//
//	echogen -n 5 -gamma 0.6 merger.csv
//	echogen -out results/ -workers 4 runs/*.parquet
//	echogen -synth chirp -out chirp-echoes.csv.zst -spectrum
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-echo/waveform/echo"
)

func main() {
	var cfg runConfig

	in := flag.String("in", "", "comma-separated input files (in addition to positional arguments)")
	flag.StringVar(&cfg.out, "out", "", "output file, or directory when several inputs are given")
	flag.StringVar(&cfg.synth, "synth", "", "synthesize the input instead of reading it: chirp or sine")
	flag.Float64Var(&cfg.freq, "freq", 128, "tone frequency for -synth sine, peak frequency for -synth chirp (Hz)")
	flag.Float64Var(&cfg.rate, "rate", 4096, "sample rate for -synth (Hz)")
	flag.Float64Var(&cfg.duration, "duration", 1, "duration for -synth (seconds)")
	flag.Float64Var(&cfg.pad, "pad", 0, "zeros added before and after each input (seconds)")
	flag.Float64Var(&cfg.peak, "peak", 0, "rescale each input so its largest |plus| or |cross| sample equals this (0 keeps the input scale)")

	flag.Float64Var(&cfg.params.T0Trunc, "t0trunc", -0.1, "taper midpoint relative to the merger (seconds)")
	flag.Float64Var(&cfg.params.TEcho, "techo", 0.2, "delay of the first echo (seconds)")
	flag.Float64Var(&cfg.params.DelTEcho, "dtecho", 0.2, "spacing between echoes (seconds)")
	flag.IntVar(&cfg.params.NEchoes, "n", 3, "number of echoes")
	flag.Float64Var(&cfg.params.Amplitude, "amp", 0.1, "amplitude of the first echo relative to the input")
	flag.Float64Var(&cfg.params.Gamma, "gamma", 0.5, "damping factor between successive echoes")
	flag.Float64Var(&cfg.timestep, "timestep", 0, "output sample spacing in seconds (0 uses the input spacing)")
	flag.BoolVar(&cfg.withOriginal, "with-original", false, "include the input waveform ahead of its echoes")

	flag.IntVar(&cfg.workers, "workers", 2, "number of inputs processed concurrently")
	flag.BoolVar(&cfg.spectrum, "spectrum", false, "log the dominant frequency of each echo train")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: echogen [flags] [input ...]\n\n")
		fmt.Fprintf(os.Stderr, "Adds damped, sign-alternating echoes to plus/cross waveform files.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echogen -n 5 -gamma 0.6 merger.csv\n")
		fmt.Fprintf(os.Stderr, "  echogen -out results/ -workers 4 runs/*.parquet\n")
		fmt.Fprintf(os.Stderr, "  echogen -synth chirp -out chirp-echoes.csv.zst -spectrum\n")
	}
	flag.Parse()

	cfg.inputs = append(splitList(*in), flag.Args()...)

	log, err := newLogger(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("echogen failed", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func echoOptions(cfg runConfig, log *zap.Logger) []echo.Option {
	opts := []echo.Option{echo.WithLogger(log)}
	if cfg.timestep != 0 {
		opts = append(opts, echo.WithTimestep(cfg.timestep))
	}
	if cfg.withOriginal {
		opts = append(opts, echo.WithOriginal())
	}
	return opts
}
