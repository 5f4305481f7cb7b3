package phystech

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Frame is a rectangular table of channel values aligned on the position
// counter. Row i holds the samples taken at position counter i+1; cells
// with no sample are NaN. Columns are labelled with the short names the
// table was requested with, in request order.
type Frame struct {
	columns []string
	data    *mat.Dense
}

// Frame reads the named channels and merges them into a table of shape
// (maxPos, len(names)). Every name is resolved before any channel is
// read; one unresolvable name fails the whole call and no partial table
// is produced. Within each channel, the value field is the second record
// field (the producer's fixed ordering) and each sample lands in row
// counter-1 of that channel's column. A counter outside [1, maxPos]
// rejects the whole build with ErrSchemaViolation. Samples sharing a
// counter overwrite each other, last in record order wins.
func (f *File) Frame(names ...string) (*Frame, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if len(names) == 0 {
		return nil, errors.New("no channels requested")
	}

	paths := make([]string, len(names))
	for i, name := range names {
		path, err := f.Search(name)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}

	backing := make([]float64, f.maxPos*len(names))
	for i := range backing {
		backing[i] = math.NaN()
	}
	data := mat.NewDense(f.maxPos, len(names), backing)

	for col, path := range paths {
		records, err := f.readChannel(path)
		if err != nil {
			return nil, err
		}

		counters, ok := records.Column(f.posCounter)
		if !ok {
			return nil, fmt.Errorf("%w: channel %q has no numeric %q field",
				ErrSchemaViolation, path, f.posCounter)
		}
		fields := records.Fields()
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: channel %q has no value field", ErrSchemaViolation, path)
		}
		values, ok := records.Column(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: value field %q of channel %q is not numeric",
				ErrSchemaViolation, fields[1], path)
		}

		for i, pos := range counters {
			row := int(pos) - 1
			if row < 0 || row >= f.maxPos {
				return nil, fmt.Errorf("%w: channel %q position counter %d outside [1, %d]",
					ErrSchemaViolation, path, int(pos), f.maxPos)
			}
			data.Set(row, col, values[i])
		}
	}

	columns := make([]string, len(names))
	copy(columns, names)
	return &Frame{columns: columns, data: data}, nil
}

// ExportFrame builds a table for the named channels and writes it to a
// CSV file at path. Building and writing are separate steps: when the
// write fails, the already assembled Frame is still returned alongside
// the error.
func (f *File) ExportFrame(path string, names ...string) (*Frame, error) {
	frame, err := f.Frame(names...)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(path)
	if err != nil {
		return frame, fmt.Errorf("creating %q: %w", path, err)
	}
	if err := frame.WriteCSV(out); err != nil {
		out.Close()
		return frame, err
	}
	if err := out.Close(); err != nil {
		return frame, fmt.Errorf("closing %q: %w", path, err)
	}
	return frame, nil
}

// Columns returns the column labels in table order.
func (fr *Frame) Columns() []string {
	out := make([]string, len(fr.columns))
	copy(out, fr.columns)
	return out
}

// Rows returns the table height.
func (fr *Frame) Rows() int {
	rows, _ := fr.data.Dims()
	return rows
}

// At returns the value at (row, col). Like gonum matrices it panics when
// the indices are out of range.
func (fr *Frame) At(row, col int) float64 {
	return fr.data.At(row, col)
}

// Column returns the values of a labelled column.
func (fr *Frame) Column(name string) ([]float64, error) {
	for i, col := range fr.columns {
		if col == name {
			return mat.Col(nil, i, fr.data), nil
		}
	}
	return nil, fmt.Errorf("%w: no column %q", ErrNotFound, name)
}

// Dense returns the underlying matrix for numeric work. The matrix is
// shared with the Frame, not copied.
func (fr *Frame) Dense() *mat.Dense {
	return fr.data
}

// WriteCSV writes the table as delimited text: one header row of column
// labels, then one row per position counter from 1 to maxPos. NaN cells
// are written empty; the row index is not written.
func (fr *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fr.columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rows, cols := fr.data.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := fr.data.At(i, j)
			if math.IsNaN(v) {
				record[j] = ""
			} else {
				record[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSVFrame reads a table previously written by WriteCSV. Empty cells
// become NaN.
func ReadCSVFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("csv has no data rows")
	}

	columns := rows[0]
	height := len(rows) - 1
	backing := make([]float64, height*len(columns))
	for i, row := range rows[1:] {
		for j, cell := range row {
			if cell == "" {
				backing[i*len(columns)+j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i+1, columns[j], err)
			}
			backing[i*len(columns)+j] = v
		}
	}

	return &Frame{
		columns: columns,
		data:    mat.NewDense(height, len(columns), backing),
	}, nil
}
