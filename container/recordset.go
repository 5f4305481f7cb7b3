package container

import (
	"errors"
	"fmt"
)

// Recordset holds one channel's samples as field-named columns. Field
// order matches the declaration order in the source dataset; that order is
// part of the data producer's contract (the first field is conventionally
// the position counter, the second the measured value). Values are
// converted to float64 for convenience; non-numeric fields keep their
// place in Fields but carry no column.
type Recordset struct {
	fields  []string
	columns map[string][]float64
	length  int
}

// NewRecordset builds a Recordset from ordered field names and numeric
// columns keyed by field name. Every column must have the same length and
// belong to a declared field.
func NewRecordset(fields []string, columns map[string][]float64) (*Recordset, error) {
	if len(fields) == 0 {
		return nil, errors.New("recordset has no fields")
	}

	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[f] = true
	}

	length := -1
	for name, col := range columns {
		if !declared[name] {
			return nil, fmt.Errorf("column %q has no matching field", name)
		}
		if length >= 0 && len(col) != length {
			return nil, fmt.Errorf("column %q has %d values, want %d", name, len(col), length)
		}
		length = len(col)
	}
	if length < 0 {
		length = 0
	}

	fieldsCopy := make([]string, len(fields))
	copy(fieldsCopy, fields)

	cols := make(map[string][]float64, len(columns))
	for name, col := range columns {
		c := make([]float64, len(col))
		copy(c, col)
		cols[name] = c
	}

	return &Recordset{
		fields:  fieldsCopy,
		columns: cols,
		length:  length,
	}, nil
}

// Fields returns the field names in declaration order.
func (r *Recordset) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of records.
func (r *Recordset) Len() int {
	return r.length
}

// Column returns the values of a numeric field. The second result is
// false when the field does not exist or is not numeric.
func (r *Recordset) Column(name string) ([]float64, bool) {
	col, ok := r.columns[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, true
}
