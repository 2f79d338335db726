// =============================================================================
// Label IDoc Converter - Segment Layout
// =============================================================================
//
// Every data segment is one fixed-width line:
//
//   | Tag | Spaces | Client       | Control | Sequence | Owner  | Level | Payload  |
//   |-----|--------|--------------|---------|----------|--------|-------|----------|
//   | 11  | 19     | 500000000000 | 7       | %06d     | %06d   | %02d  | variable |
//
// The owner is the sequence number of the structural parent segment:
//   material (level 02) -> owner 0
//   label    (level 03) -> owner = material segment
//   text     (level 04) -> owner = label segment
//   characteristic (04) -> owner = label segment
//
// =============================================================================

package idoc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Segment tags.
const (
	TagControl        = "EDI_DC40"
	TagMaterial       = "Z2BTMH01000"
	TagLabel          = "Z2BTLH01000"
	TagText           = "Z2BTTX01000"
	TagCharacteristic = "Z2BTLC01000"
)

// Hierarchy levels.
const (
	LevelMaterial       = 2
	LevelLabel          = 3
	LevelText           = 4
	LevelCharacteristic = 4
)

// Field widths.
const (
	tagWidth        = 11
	tagPadding      = 19
	materialWidth   = 18
	labelWidth      = 18
	templateWidth   = 30
	nameWidth       = 30
	valueWidth      = 30
	assetWidth      = 255
	textNameWidth   = 70
	TextWidth       = 70
	controlNumWidth = 7
)

// Client is the fixed 12-digit client placeholder of every segment.
const Client = "500000000000"

// DefaultControlNumber is used when no control number is configured.
const DefaultControlNumber = "1234567"

// Segment is one emitted data line.
type Segment struct {
	Tag     string
	Control string
	Seq     int
	Owner   int
	Level   int
	Payload string
}

// String formats the segment without a line terminator.
func (s Segment) String() string {
	var b strings.Builder
	b.WriteString(fit(s.Tag, tagWidth))
	b.WriteString(strings.Repeat(" ", tagPadding))
	b.WriteString(Client)
	b.WriteString(fit(s.Control, controlNumWidth))
	fmt.Fprintf(&b, "%06d%06d%02d", s.Seq, s.Owner, s.Level)
	b.WriteString(s.Payload)
	return b.String()
}

// fit pads s with spaces or truncates it to exactly width characters.
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n == width {
		return s
	}
	if n < width {
		return s + strings.Repeat(" ", width-n)
	}
	i := 0
	for pos := range s {
		if i == width {
			return s[:pos]
		}
		i++
	}
	return s
}
