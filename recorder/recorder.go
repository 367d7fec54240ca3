package recorder

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/quasi1d/types"
)

// Recorder stores the residual norm history of a run, one entry per iteration
type Recorder interface {
	Record(iteration int, norm types.Triple) error
	// Flush writes any buffered entries to the backing store
	Flush() error
	Close() error
}

// Entry is one row of the residual history
type Entry struct {
	RunID     string
	Iteration int
	Norm      types.Triple
}

type NopRecorder struct{}

func (NopRecorder) Record(int, types.Triple) error { return nil }
func (NopRecorder) Flush() error                   { return nil }
func (NopRecorder) Close() error                   { return nil }

// New picks the backend from the file extension, an empty path records nothing
func New(path string) (r Recorder, err error) {
	if len(path) == 0 {
		return NopRecorder{}, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVRecorder(path)
	case ".sqlite3", ".sqlite", ".db":
		return NewSQLiteRecorder(path)
	default:
		err = fmt.Errorf("unable to choose a history format for file %q, use .csv or .sqlite3", path)
	}
	return
}
