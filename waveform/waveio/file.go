package waveio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-echo/dsp/series"
)

// Format identifies an on-disk waveform layout.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// FormatOf infers the layout from a file name. A trailing ".zst" is only
// accepted on CSV names; Parquet compresses its own pages.
func FormatOf(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, ".zst")
	name = strings.TrimSuffix(name, ".zst")

	switch filepath.Ext(name) {
	case ".csv":
		return FormatCSV
	case ".parquet", ".pq":
		if compressed {
			return FormatUnknown
		}

		return FormatParquet
	default:
		return FormatUnknown
	}
}

// Read loads a pair from path, choosing the decoder from its extension.
func Read(path string) (plus, cross series.TimeSeries, err error) {
	switch FormatOf(path) {
	case FormatCSV:
		return ReadCSV(path)
	case FormatParquet:
		return ReadParquet(path)
	default:
		return plus, cross, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Write stores a pair at path, choosing the encoder from its extension.
func Write(path string, plus, cross series.TimeSeries) error {
	switch FormatOf(path) {
	case FormatCSV:
		return WriteCSV(path, plus, cross)
	case FormatParquet:
		return WriteParquet(path, plus, cross)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
