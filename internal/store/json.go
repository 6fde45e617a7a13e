package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
)

// JSONHistory keeps decisions as an indented JSON array in a single file
type JSONHistory struct {
	path string
}

// OpenJSON returns a history backed by the JSON file at path.
// The file is created on the first Append.
func OpenJSON(path string) *JSONHistory {
	return &JSONHistory{path: path}
}

// Path returns the history file location
func (h *JSONHistory) Path() string {
	return h.path
}

// List reads all decisions; a missing file is an empty history
func (h *JSONHistory) List() ([]analysis.Decision, error) {
	data, err := os.ReadFile(h.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history []analysis.Decision
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptHistory, h.path, err)
	}
	return history, nil
}

// Append reads the stored history, adds d and rewrites the file through a
// temporary file in the same directory. A failed write leaves the previous
// history in place.
func (h *JSONHistory) Append(d analysis.Decision) error {
	history, err := h.List()
	if err != nil {
		return err
	}
	history = append(history, d)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), h.path); err != nil {
		return fmt.Errorf("replacing history file: %w", err)
	}

	return nil
}

// Close is a no-op; the file is only open during List and Append
func (h *JSONHistory) Close() error {
	return nil
}
