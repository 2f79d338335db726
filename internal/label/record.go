package label

import (
	"errors"
	"fmt"
)

// RequiredPrefix starts every valid label identifier.
const RequiredPrefix = "LBL"

var (
	// ErrInvalidLabel is returned for a row whose label identifier does not
	// start with RequiredPrefix.
	ErrInvalidLabel = errors.New("label identifier must start with " + RequiredPrefix)

	// ErrMissingTemplate is returned for a row without a template number.
	ErrMissingTemplate = errors.New("template number is required")
)

// RowError ties a fatal record error to its input row.
type RowError struct {
	Row   int
	Field Field
	Value string
	Err   error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, field %s (value: '%s'): %v", e.Row, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *RowError) Unwrap() error {
	return e.Err
}

// Record is one label variant: one data row of the input sheet.
//
// Only fields whose column appeared in the header are present. Absent and
// empty values both read as "", but Has distinguishes them.
type Record struct {
	// Row is the 1-based input line of the data row.
	Row int

	// Label is the label identifier (required, starts with "LBL").
	Label string

	// Material is the material number. May be empty.
	Material string

	// Template is the label template number.
	Template string

	// Text is the free-text block, still containing its "##" markers.
	Text string

	values map[Field]string
	flags  map[Field]bool
}

// NewRecord returns an empty record for the given input row.
func NewRecord(row int) *Record {
	return &Record{
		Row:    row,
		values: make(map[Field]string),
		flags:  make(map[Field]bool),
	}
}

// Has reports whether the field's column was present in the header.
func (r *Record) Has(f Field) bool {
	_, ok := r.values[f]
	return ok
}

// Value returns the normalized value of a field, "" if absent.
func (r *Record) Value(f Field) string {
	return r.values[f]
}

// Flag returns the boolean value of a flag field.
func (r *Record) Flag(f Field) bool {
	return r.flags[f]
}

// set stores a normalized value, dispatching identity fields to their
// dedicated struct members.
func (r *Record) set(def Definition, value string) {
	r.values[def.Field] = value
	switch def.Field {
	case FieldLabel:
		r.Label = value
	case FieldMaterial:
		r.Material = value
	case FieldTemplate:
		r.Template = value
	case FieldTDLine:
		r.Text = value
	}
	if def.Kind == KindFlag {
		r.flags[def.Field] = IsAffirmative(value)
	}
}
