// =============================================================================
// Label IDoc Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - label       (truncation warnings while building records)
//   - validation  (barcode and revision checks)
//   - idoc        (per-field emission warnings)
//   - converter   (collecting the warnings side channel of a document)
//
// =============================================================================

package types

import (
	"fmt"
	"strings"
)

// =============================================================================
// ISSUE SEVERITY
// =============================================================================

// Severity classifies a recoverable issue found while converting a document.
type Severity string

const (
	// SeverityInfo is purely informational (e.g. an ignored header column).
	SeverityInfo Severity = "info"

	// SeverityWarning means the value was used anyway (warn-and-emit) or was
	// shortened to fit its field (truncation).
	SeverityWarning Severity = "warning"

	// SeveritySkipped means the segment for the field was omitted
	// (warn-and-skip). Processing continues with the next field.
	SeveritySkipped Severity = "skipped"
)

// =============================================================================
// ISSUE
// =============================================================================

// Issue is one entry of the warnings side channel. Issues never abort a
// document; fatal conditions are reported as errors instead.
type Issue struct {
	// Severity of the issue.
	Severity Severity

	// Row is the 1-based row of the input sheet (the header row is row 1).
	// Zero when the issue is not tied to a row.
	Row int

	// Field is the characteristic or column name the issue refers to.
	Field string

	// Value is the offending cell value.
	Value string

	// Message is a human-readable description.
	Message string
}

// String implements fmt.Stringer.
func (i Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", strings.ToUpper(string(i.Severity)))
	if i.Row > 0 {
		fmt.Fprintf(&b, " row %d", i.Row)
	}
	if i.Field != "" {
		fmt.Fprintf(&b, " field '%s'", i.Field)
	}
	fmt.Fprintf(&b, ": %s", i.Message)
	if i.Value != "" {
		fmt.Fprintf(&b, " (value: '%s')", i.Value)
	}
	return b.String()
}

// Issues is an ordered collection of issues for one document.
type Issues []Issue

// Add appends an issue.
func (is *Issues) Add(issue Issue) {
	*is = append(*is, issue)
}

// Count returns the number of issues with the given severity.
func (is Issues) Count(severity Severity) int {
	n := 0
	for _, issue := range is {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}
