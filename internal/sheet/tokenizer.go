package sheet

import "strings"

// Tab is the delimiter of spreadsheet "Text (Tab delimited)" exports.
const Tab = '\t'

// Tokenize splits row on delim and returns every substring between
// delimiters, including the (possibly empty) substring after the last one.
// A row without the delimiter yields a single token equal to the row.
func Tokenize(row string, delim rune) []string {
	return strings.Split(row, string(delim))
}

// Cell returns the token at index, or "" when the row is too short.
func Cell(tokens []string, index int) string {
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}
