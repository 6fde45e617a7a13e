package store

import (
	"errors"
	"fmt"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/analysis"
)

// ErrCorruptHistory is returned when a persisted history cannot be decoded
var ErrCorruptHistory = errors.New("decision history is corrupt")

// ErrUnknownBackend is returned for a history backend that doesn't exist
var ErrUnknownBackend = errors.New("unknown history backend")

// Backend names
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// History is an append-only record of workout decisions.
// Implementations assume a single writer per run.
type History interface {
	// Append adds a decision after all previously stored ones
	Append(d analysis.Decision) error
	// List returns every stored decision, oldest first
	List() ([]analysis.Decision, error)
	Close() error
}

// Open opens the history at path using the named backend
func Open(backend, path string) (History, error) {
	if path == "" {
		return nil, errors.New("history path is required")
	}

	switch backend {
	case BackendJSON:
		return OpenJSON(path), nil
	case BackendSQLite:
		h, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
