package waveio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/cwbudde/algo-echo/dsp/series"
)

var csvHeader = []string{"time", "plus", "cross"}

// EncodeCSV writes the pair to w as CSV with a time,plus,cross header.
// Values are formatted with the shortest representation that round-trips.
func EncodeCSV(w io.Writer, plus, cross series.TimeSeries) error {
	rows, err := Rows(plus, cross)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	record := make([]string, 3)
	for _, r := range rows {
		record[0] = formatFloat(r.Time)
		record[1] = formatFloat(r.Plus)
		record[2] = formatFloat(r.Cross)

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// DecodeCSV reads a pair from CSV produced by [EncodeCSV] or any file with
// the same three columns. Header names are matched case-insensitively.
func DecodeCSV(r io.Reader) (plus, cross series.TimeSeries, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return plus, cross, fmt.Errorf("%w: got 0", ErrTooFewRows)
	}

	if err != nil {
		return plus, cross, fmt.Errorf("waveio: read header: %w", err)
	}

	for i, name := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return plus, cross, fmt.Errorf("%w: column %d is %q", ErrBadHeader, i, header[i])
		}
	}

	var rows []Row

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return plus, cross, fmt.Errorf("waveio: %w", err)
		}

		var vals [3]float64
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return plus, cross, fmt.Errorf("waveio: line %d column %s: %w", line, csvHeader[i], err)
			}

			vals[i] = v
		}

		rows = append(rows, Row{Time: vals[0], Plus: vals[1], Cross: vals[2]})
	}

	return FromRows(rows)
}

// WriteCSV writes the pair to path. A ".zst" suffix compresses the stream
// with zstd.
func WriteCSV(path string, plus, cross series.TimeSeries) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !isZstd(path) {
		return EncodeCSV(f, plus, cross)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}

	if err := EncodeCSV(enc, plus, cross); err != nil {
		_ = enc.Close()
		return err
	}

	return enc.Close()
}

// ReadCSV reads a pair from path, decompressing it when the name ends in ".zst".
func ReadCSV(path string) (plus, cross series.TimeSeries, err error) {
	f, err := os.Open(path)
	if err != nil {
		return plus, cross, err
	}
	defer f.Close()

	if !isZstd(path) {
		return DecodeCSV(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return plus, cross, err
	}
	defer dec.Close()

	return DecodeCSV(dec)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isZstd(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}
