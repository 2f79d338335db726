// =============================================================================
// Label IDoc Converter - Sheet Parser Module
// =============================================================================
//
// This module holds the Row Store: the raw rows of a tab-delimited
// spreadsheet export, header row first. It is deliberately simple:
//   - One row-major layout, header row first
//   - Rows terminated by LF or CRLF (CRLF is normalized to one terminator)
//   - Rows with nothing printable besides delimiters are dropped
//   - A leading UTF-8 byte order mark (Excel "Unicode" exports) is removed
//
// There is no quoting awareness here. Cells containing tabs or newlines are
// not supported by the downstream format; quote handling of individual
// fields happens later, in the label package.
//
// =============================================================================

package sheet

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("input contains no rows")

// =============================================================================
// ROW STORE
// =============================================================================

// Row is one raw, untokenized input line.
type Row struct {
	// Line is the 1-based physical line number in the input file.
	Line int

	// Text is the row content without its terminator.
	Text string
}

// Sheet is the in-memory Row Store for one input file.
type Sheet struct {
	// Header is the first non-empty row.
	Header Row

	// Rows contains the data rows in document order.
	Rows []Row

	// Dropped is the number of rows discarded because they were empty.
	Dropped int
}

// HeaderTokens tokenizes the header row.
func (s *Sheet) HeaderTokens(delim rune) []string {
	return Tokenize(s.Header.Text, delim)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse builds a Sheet from the raw bytes of an input file.
//
// PARAMETERS:
//   - data: The file content.
//   - delim: The cell delimiter, used to decide whether a row is empty.
//
// RETURNS:
//   - The Sheet.
//   - ErrEmptyInput if no row has printable content.
func Parse(data []byte, delim rune) (*Sheet, error) {
	return Read(bytes.NewReader(data), delim)
}

// Read is Parse over an io.Reader.
func Read(r io.Reader, delim rune) (*Sheet, error) {
	reader := bufio.NewReader(r)

	s := &Sheet{}
	haveHeader := false
	line := 0

	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read line %d: %w", line+1, err)
		}
		if text == "" && err == io.EOF {
			break
		}
		line++

		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		if isRowEmpty(text, delim) {
			s.Dropped++
		} else if !haveHeader {
			s.Header = Row{Line: line, Text: text}
			haveHeader = true
		} else {
			s.Rows = append(s.Rows, Row{Line: line, Text: text})
		}

		if err == io.EOF {
			break
		}
	}

	if !haveHeader {
		return nil, ErrEmptyInput
	}

	return s, nil
}

// isRowEmpty reports whether a row has nothing printable once delimiters
// are ignored.
func isRowEmpty(text string, delim rune) bool {
	for _, r := range text {
		if r == delim || unicode.IsSpace(r) {
			continue
		}
		if unicode.IsGraphic(r) {
			return false
		}
	}
	return true
}
