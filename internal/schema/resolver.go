// =============================================================================
// Label IDoc Converter - Schema Resolver
// =============================================================================
//
// The resolver reads the header row of the input sheet and works out which
// column holds which characteristic. Columns may appear in any order and any
// subset of the vocabulary may be present.
//
// MATCHING:
//   - Header cells are trimmed, then matched exactly (case-sensitive)
//     against every accepted spelling in the label vocabulary.
//   - Unrecognized headers are recorded as ignored. This never fails the run.
//   - When two header cells resolve to the same field (for example the
//     synonyms CE0120 and CEMARK), the later column wins. The earlier one is
//     reported in Shadowed so the behavior is visible.
//
// =============================================================================

package schema

import (
	"strings"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
)

// Column is one header cell.
type Column struct {
	// Index is the zero-based column position.
	Index int

	// Header is the trimmed header text.
	Header string
}

// Mapping is the resolved header of one document.
type Mapping struct {
	// Columns maps each recognized field to its column.
	Columns label.Columns

	// Headers records which header spelling was used for each field.
	Headers map[label.Field]string

	// Ignored lists header cells that matched no field, in column order.
	// Empty header cells are not listed.
	Ignored []Column

	// Shadowed lists header cells that were overridden by a later column
	// resolving to the same field.
	Shadowed []Column
}

// Has reports whether the field was present in the header.
func (m *Mapping) Has(f label.Field) bool {
	_, ok := m.Columns[f]
	return ok
}

// Resolve builds the Mapping for a tokenized header row.
func Resolve(header []string) *Mapping {
	m := &Mapping{
		Columns: make(label.Columns),
		Headers: make(map[label.Field]string),
	}

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := label.ForHeader(name)
		if !ok {
			m.Ignored = append(m.Ignored, Column{Index: i, Header: name})
			continue
		}

		if prev, seen := m.Columns[def.Field]; seen {
			m.Shadowed = append(m.Shadowed, Column{Index: prev, Header: m.Headers[def.Field]})
		}
		m.Columns[def.Field] = i
		m.Headers[def.Field] = name
	}

	return m
}
