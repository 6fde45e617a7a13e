package workout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNotPolarCSV is returned when the input does not look like a Polar Flow export
var ErrNotPolarCSV = errors.New("data does not exist or is not Polar Flow CSV format")

// Polar Flow CSV column names
const (
	PolarDateColumn      = "Date"
	PolarDurationColumn  = "Duration"
	PolarHeartRateColumn = "HR (bpm)"
	PolarSpeedColumn     = "Speed (km/h)"
)

// PolarMetadataLines is the number of summary lines preceding the sample header
const PolarMetadataLines = 2

// ReadPolarCSV parses a Polar Flow CSV export.
//
// The export starts with a summary header and a single summary row (date,
// duration, ...), followed by the per-second sample header and rows.
func ReadPolarCSV(r io.Reader) (*Workout, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // summary and sample sections differ in width
	cr.TrimLeadingSpace = true

	summaryHeader, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading summary header: %v", ErrNotPolarCSV, err)
	}
	summary, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading summary row: %v", ErrNotPolarCSV, err)
	}

	dateIdx := columnIndex(summaryHeader, PolarDateColumn)
	durIdx := columnIndex(summaryHeader, PolarDurationColumn)
	if dateIdx < 0 || durIdx < 0 {
		return nil, fmt.Errorf("%w: summary is missing %q or %q", ErrNotPolarCSV, PolarDateColumn, PolarDurationColumn)
	}

	w := &Workout{
		Date: cell(summary, dateIdx),
	}
	w.DurationMin, err = ParseDuration(cell(summary, durIdx))
	if err != nil {
		return nil, fmt.Errorf("parsing workout duration: %w", err)
	}

	sampleHeader, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading sample header: %v", ErrNotPolarCSV, err)
	}
	hrIdx := columnIndex(sampleHeader, PolarHeartRateColumn)
	speedIdx := columnIndex(sampleHeader, PolarSpeedColumn)
	if hrIdx < 0 || speedIdx < 0 {
		return nil, fmt.Errorf("%w: samples are missing %q or %q", ErrNotPolarCSV, PolarHeartRateColumn, PolarSpeedColumn)
	}

	// Line numbers are 1-based and count the metadata and header lines
	line := PolarMetadataLines + 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrNotPolarCSV, line, err)
		}

		hr, err := parseCell(cell(row, hrIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing %s: %w", line, PolarHeartRateColumn, err)
		}
		speed, err := parseCell(cell(row, speedIdx))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing %s: %w", line, PolarSpeedColumn, err)
		}
		w.Samples = append(w.Samples, Sample{HeartRate: hr, Speed: speed})
	}

	if len(w.Samples) == 0 {
		return nil, fmt.Errorf("%w: no sample rows", ErrNotPolarCSV)
	}

	return w, nil
}

// columnIndex returns the position of name in header, or -1
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCell parses a numeric cell; empty cells become NaN
func parseCell(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
