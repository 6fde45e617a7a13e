package workout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for files that are neither Polar Flow CSV nor FIT
var ErrUnsupportedFormat = errors.New("unsupported workout format, expected a Polar Flow .csv export or a .fit file")

// Open reads a workout file, choosing the reader by extension (.csv or .fit)
func Open(path string) (*Workout, error) {
	var read func(f *os.File) (*Workout, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		read = func(f *os.File) (*Workout, error) { return ReadPolarCSV(f) }
	case ".fit":
		read = func(f *os.File) (*Workout, error) { return ReadFIT(f) }
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workout: %w", err)
	}
	defer f.Close()

	w, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	w.Source = path
	return w, nil
}
