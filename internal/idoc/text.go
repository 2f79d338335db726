package idoc

import (
	"strings"
	"unicode/utf8"
)

// Marker splits a free-text block into separately emitted chunks.
const Marker = "##"

// Chunks splits a free-text block into text lines of at most TextWidth
// characters.
//
// The block is split on Marker. Every chunk except the final one keeps its
// marker, which the label template uses as a paragraph break. Chunks that
// do not fit are reflowed at word boundaries, or hard-broken when a word
// alone is wider than a line. An empty final chunk is dropped.
func Chunks(block string) []string {
	if block == "" {
		return nil
	}

	pieces := strings.Split(block, Marker)
	var lines []string

	for i, piece := range pieces {
		last := i == len(pieces)-1
		if last && piece == "" {
			break
		}

		wrapped := wrap(piece, TextWidth)
		if !last {
			tail := wrapped[len(wrapped)-1]
			if utf8.RuneCountInString(tail)+len(Marker) <= TextWidth {
				wrapped[len(wrapped)-1] = tail + Marker
			} else {
				wrapped = append(wrapped, Marker)
			}
		}
		lines = append(lines, wrapped...)
	}

	return lines
}

// wrap breaks s into lines of at most width characters. Spaces at a break
// are dropped and never produce a line of their own.
func wrap(s string, width int) []string {
	var lines []string
	for utf8.RuneCountInString(s) > width {
		r := []rune(s)

		cut := -1
		for i := width; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}

		if cut < 0 {
			lines = append(lines, string(r[:width]))
			s = string(r[width:])
			continue
		}

		if line := strings.TrimRight(string(r[:cut]), " "); line != "" {
			lines = append(lines, line)
		}
		s = strings.TrimLeft(string(r[cut+1:]), " ")
	}
	return append(lines, s)
}
