package waveio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/cwbudde/algo-echo/dsp/series"
)

const parquetBatch = 1024

// EncodeParquet writes the pair to w as a zstd-compressed Parquet file of
// [Row] records.
func EncodeParquet(w io.Writer, plus, cross series.TimeSeries) error {
	rows, err := Rows(plus, cross)
	if err != nil {
		return err
	}

	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("waveio: write parquet: %w", err)
	}

	return pw.Close()
}

// DecodeParquet reads a pair from the Parquet file held in ra.
func DecodeParquet(ra io.ReaderAt, size int64) (plus, cross series.TimeSeries, err error) {
	f, err := parquet.OpenFile(ra, size)
	if err != nil {
		return plus, cross, fmt.Errorf("waveio: open parquet: %w", err)
	}

	gr := parquet.NewGenericReader[Row](f)
	defer gr.Close()

	rows := make([]Row, 0, gr.NumRows())
	batch := make([]Row, parquetBatch)

	for {
		n, err := gr.Read(batch)
		if n > 0 {
			rows = append(rows, batch[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return plus, cross, fmt.Errorf("waveio: read parquet: %w", err)
		}
	}

	return FromRows(rows)
}

// WriteParquet writes the pair to path.
func WriteParquet(path string, plus, cross series.TimeSeries) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeParquet(f, plus, cross)
}

// ReadParquet reads a pair from path.
func ReadParquet(path string) (plus, cross series.TimeSeries, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plus, cross, err
	}

	return DecodeParquet(bytes.NewReader(data), int64(len(data)))
}
