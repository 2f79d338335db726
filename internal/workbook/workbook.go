// =============================================================================
// Label IDoc Converter - XLSX Workbook Support
// =============================================================================
//
// Label data is maintained in spreadsheets. This module covers both ends:
//
//   TEMPLATE - NewTemplate builds an empty label workbook whose first sheet
//              carries one header cell per known field, so users start from
//              a header the converter understands. Two reference sheets
//              document the field vocabulary and the characteristic lookup.
//
//   IMPORT   - ToDelimited reads the first sheet of a filled-in workbook and
//              renders it as delimited text, so .xlsx files can be converted
//              without exporting them by hand first.
//
// TEMPLATE STRUCTURE:
//
//   | Sheet      | Contents                                                |
//   |------------|---------------------------------------------------------|
//   | Labels     | Row 1: canonical header of every field, emission order  |
//   | Fields     | Header, Synonyms, Kind, Capacity, Graphic, Extended     |
//   | Lookup     | Value, Graphic file                                      |
//
// =============================================================================

package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
)

// Sheet names of the template workbook.
const (
	SheetLabels = "Labels"
	SheetFields = "Fields"
	SheetLookup = "Lookup"
)

// Extension is the file extension of workbooks.
const Extension = ".xlsx"

// ErrNoSheets is returned for a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no worksheets")

// =============================================================================
// TEMPLATE
// =============================================================================

// NewTemplate builds the label template workbook.
//
// PARAMETERS:
//   - extended: Include the extended field set.
//   - table: The lookup table listed on the Lookup sheet.
//
// RETURNS:
//   - The workbook. The caller must Close it.
//   - An error if the workbook cannot be built.
func NewTemplate(extended bool, table *lookup.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetLabels); err != nil {
		f.Close()
		return nil, err
	}

	if err := buildTemplate(f, extended, table); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func buildTemplate(f *excelize.File, extended bool, table *lookup.Table) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// =========================================================================
	// LABELS SHEET
	// =========================================================================

	headers := label.HeaderNames(extended)
	if err := f.SetSheetRow(SheetLabels, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write label header: %w", err)
	}
	if err := header(f, SheetLabels, len(headers), bold); err != nil {
		return err
	}

	// =========================================================================
	// FIELDS SHEET
	// =========================================================================

	if _, err := f.NewSheet(SheetFields); err != nil {
		return err
	}
	rows := [][]string{{"Header", "Synonyms", "Kind", "Capacity", "Graphic", "Extended"}}
	for _, def := range label.Vocabulary() {
		if def.Extended && !extended {
			continue
		}
		capacity := ""
		if def.Capacity > 0 {
			capacity = strconv.Itoa(def.Capacity)
		}
		graphic := ""
		if def.Kind == label.KindFlag {
			graphic = def.Asset + lookup.AssetExt
		}
		rows = append(rows, []string{
			def.Headers[0],
			strings.Join(def.Headers[1:], ", "),
			def.Kind.String(),
			capacity,
			graphic,
			yesNo(def.Extended),
		})
	}
	if err := writeRows(f, SheetFields, rows); err != nil {
		return err
	}
	if err := header(f, SheetFields, len(rows[0]), bold); err != nil {
		return err
	}

	// =========================================================================
	// LOOKUP SHEET
	// =========================================================================

	if _, err := f.NewSheet(SheetLookup); err != nil {
		return err
	}
	rows = [][]string{{"Value", "Graphic file"}}
	for _, e := range table.Entries() {
		rows = append(rows, []string{e.Key, e.Asset + lookup.AssetExt})
	}
	if err := writeRows(f, SheetLookup, rows); err != nil {
		return err
	}
	return header(f, SheetLookup, len(rows[0]), bold)
}

// writeRows writes rows starting at A1.
func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// header styles and freezes the first row of a sheet.
func header(f *excelize.File, sheet string, columns, style int) error {
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

// =============================================================================
// IMPORT
// =============================================================================

// ToDelimited renders the first worksheet of a workbook as delimited text,
// one line per row terminated by "\n".
//
// Delimiters and line breaks inside a cell are replaced by spaces so that
// each row stays one line with the same number of cells.
func ToDelimited(data []byte, delim rune) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	clean := strings.NewReplacer(string(delim), " ", "\r\n", " ", "\n", " ", "\r", " ")

	var buf bytes.Buffer
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				buf.WriteRune(delim)
			}
			buf.WriteString(clean.Replace(cell))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// IsWorkbook reports whether a path names an .xlsx workbook.
func IsWorkbook(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), Extension)
}
