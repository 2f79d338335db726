package idoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

// Line terminators.
const (
	CRLF = "\r\n"
	LF   = "\n"
)

// ErrNotOpened is returned when records are written before the control
// header.
var ErrNotOpened = errors.New("document control header not written")

// Writer writes one IDoc document.
type Writer struct {
	w       *bufio.Writer
	emitter *Emitter
	eol     string
	opened  bool

	records  int
	segments int
	issues   types.Issues
}

// NewWriter creates a document writer. An empty eol selects CRLF.
func NewWriter(w io.Writer, emitter *Emitter, eol string) *Writer {
	if eol == "" {
		eol = CRLF
	}
	return &Writer{w: bufio.NewWriter(w), emitter: emitter, eol: eol}
}

// Open writes the control header.
func (w *Writer) Open(created time.Time) error {
	if w.opened {
		return nil
	}
	if err := w.line(ControlHeader(w.emitter.State().Control(), created)); err != nil {
		return err
	}
	w.opened = true
	return nil
}

// WriteRecord emits and writes the segments of one record.
func (w *Writer) WriteRecord(rec *label.Record) error {
	if !w.opened {
		return ErrNotOpened
	}

	segments, issues, err := w.emitter.Emit(rec)
	if err != nil {
		return err
	}
	w.issues = append(w.issues, issues...)

	for _, seg := range segments {
		if err := w.line(seg.String()); err != nil {
			return err
		}
	}
	w.records++
	w.segments += len(segments)
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Records returns the number of records written.
func (w *Writer) Records() int { return w.records }

// Segments returns the number of data segments written, excluding the
// control header.
func (w *Writer) Segments() int { return w.segments }

// Issues returns the warnings collected while writing.
func (w *Writer) Issues() types.Issues { return w.issues }

func (w *Writer) line(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		return fmt.Errorf("failed to write segment: %w", err)
	}
	if _, err := w.w.WriteString(w.eol); err != nil {
		return fmt.Errorf("failed to write segment: %w", err)
	}
	return nil
}
