// Package waveio reads and writes plus/cross waveform pairs.
//
// Two on-disk layouts are supported. CSV files carry a `time,plus,cross`
// header followed by one row per sample; a `.zst` suffix selects zstd
// compression of the whole stream. Parquet files store the same three
// columns as float64 with zstd page compression.
//
// The epoch of a loaded pair is the first time value and its sample spacing
// is the mean step between the first and last rows. Every row must lie on that
// grid to within a small fraction of the spacing, an absolute bound that
// stays tight at large epochs such as GPS times.
package waveio
