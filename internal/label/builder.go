// =============================================================================
// Label IDoc Converter - Label Record Builder
// =============================================================================
//
// The builder turns one tokenized data row into a Record using the column
// positions resolved from the header row.
//
// PER-FIELD NORMALIZATION:
//   - every cell is trimmed of surrounding whitespace
//   - block, quoted and barcode cells have spreadsheet quoting removed
//   - values longer than their capacity are truncated and reported, except
//     the barcode and revision, which are validated whole at emission
//   - flags are true only for "Y"/"YES" (any case)
//
// The barcode is kept as text here. It is validated when the segment is
// written, because a bad barcode is a per-record warning, not a parse error.
//
// =============================================================================

package label

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/label-idoc-converter/internal/sheet"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

// Columns maps a characteristic to the zero-based column that holds it.
// A field without an entry was not in the header and is never emitted.
type Columns map[Field]int

// Build populates a Record from one data row.
//
// PARAMETERS:
//   - row: The input line number of the data row.
//   - tokens: The tokenized data row.
//   - columns: The resolved column mapping.
//
// RETURNS:
//   - The Record.
//   - Truncation warnings.
//   - A *RowError wrapping ErrInvalidLabel when the label identifier does
//     not start with "LBL". The caller is expected to abort the run.
func Build(row int, tokens []string, columns Columns) (*Record, types.Issues, error) {
	rec := NewRecord(row)
	var issues types.Issues

	for _, def := range vocabulary {
		index, ok := columns[def.Field]
		if !ok {
			continue
		}

		value := strings.TrimSpace(sheet.Cell(tokens, index))
		if def.Kind.Quoted() {
			value = NormalizeQuotes(value)
		}

		if def.Validated() {
			rec.set(def, value)
			continue
		}

		bounded, truncated := Bound(value, def.Capacity)
		if truncated {
			issues.Add(types.Issue{
				Severity: types.SeverityWarning,
				Row:      row,
				Field:    string(def.Field),
				Value:    value,
				Message:  fmt.Sprintf("value truncated to %d characters", def.Capacity),
			})
		}

		rec.set(def, bounded)
	}

	if !strings.HasPrefix(rec.Label, RequiredPrefix) {
		return nil, issues, &RowError{Row: row, Field: FieldLabel, Value: rec.Label, Err: ErrInvalidLabel}
	}

	return rec, issues, nil
}
