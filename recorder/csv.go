package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/notargets/quasi1d/types"
)

var csvHeader = []string{"iteration", "mass", "momentum", "energy"}

// CSVRecorder writes the residual history as comma separated values with a header row
type CSVRecorder struct {
	file *os.File
	w    *csv.Writer
}

func NewCSVRecorder(path string) (r *CSVRecorder, err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(path); err != nil {
		return nil, fmt.Errorf("creating residual history: %w", err)
	}
	r = &CSVRecorder{
		file: f,
		w:    csv.NewWriter(f),
	}
	if err = r.w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, err
	}
	return
}

func (r *CSVRecorder) Record(iteration int, norm types.Triple) error {
	rec := []string{strconv.Itoa(iteration)}
	for eq := 0; eq < 3; eq++ {
		rec = append(rec, strconv.FormatFloat(norm[eq], 'e', -1, 64))
	}
	return r.w.Write(rec)
}

func (r *CSVRecorder) Flush() error {
	r.w.Flush()
	return r.w.Error()
}

func (r *CSVRecorder) Close() (err error) {
	if err = r.Flush(); err != nil {
		_ = r.file.Close()
		return
	}
	return r.file.Close()
}

// ReadCSV loads a history written by CSVRecorder
func ReadCSV(path string) (entries []Entry, err error) {
	var (
		f       *os.File
		records [][]string
	)
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()
	if records, err = csv.NewReader(f).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", i+1, len(csvHeader), len(rec))
		}
		var e Entry
		if e.Iteration, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for eq := 0; eq < 3; eq++ {
			if e.Norm[eq], err = strconv.ParseFloat(rec[eq+1], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		entries = append(entries, e)
	}
	return
}
