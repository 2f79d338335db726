// =============================================================================
// Label IDoc Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the entire
// conversion pipeline for a single file, from the label sheet to the IDoc.
//
// CONVERSION PIPELINE:
//   1. Read the input file through the storage abstraction (an .xlsx
//      workbook is read from its first worksheet)
//   2. Split it into the header row and the data rows
//   3. Resolve the header row into a column mapping
//   4. Build a label record from every data row
//   5. Emit the segments of every record into an in-memory document
//   6. Fingerprint the document
//   7. Write the output file (and the warnings log, when enabled)
//
// FAILURE SEMANTICS:
//   A fatal error in any step aborts the whole document. Nothing is written
//   for an aborted document: the output is only uploaded after the last
//   record was emitted successfully.
//
// CONCURRENCY:
//   A Converter holds no per-document state. Each Run creates its own
//   sequence state, so one Converter may run several documents at once.
//
// =============================================================================

package converter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/highwayhash"
	"github.com/viant/afs"

	"github.com/ginjaninja78/label-idoc-converter/internal/config"
	"github.com/ginjaninja78/label-idoc-converter/internal/idoc"
	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/logging"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/internal/schema"
	"github.com/ginjaninja78/label-idoc-converter/internal/sheet"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
	"github.com/ginjaninja78/label-idoc-converter/internal/validation"
	"github.com/ginjaninja78/label-idoc-converter/internal/workbook"
	"github.com/ginjaninja78/label-idoc-converter/pkg/utils"
)

// fingerprintKey keys the 64-bit document fingerprint.
var fingerprintKey = []byte("LABEL-IDOC-CONVERTER-FINGERPRINT")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// FilePath is the input file that was processed.
	FilePath string

	// OutputFile is the path of the IDoc file. It is set for dry runs too,
	// even though nothing is written.
	OutputFile string

	// WarningLog is the path of the warnings log, if one was written.
	WarningLog string

	// RunID identifies this conversion in logs and reports.
	RunID string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the fatal error if processing failed.
	Error error

	// Issues is the warnings side channel of the document.
	Issues types.Issues

	// Output is the generated document.
	Output []byte

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// Rows is the number of data rows read.
	Rows int

	// DroppedRows is the number of rows without content.
	DroppedRows int

	// Records is the number of label records emitted.
	Records int

	// Segments is the number of data segments, excluding the control header.
	Segments int

	// IgnoredColumns is the number of header columns outside the vocabulary.
	IgnoredColumns int

	// Warnings is the number of warn-and-emit and truncation issues.
	Warnings int

	// Skipped is the number of characteristics omitted by validation.
	Skipped int

	// Fingerprint is the HighwayHash-64 of the document, in hex.
	Fingerprint string

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options tunes a Converter.
type Options struct {
	// DryRun builds every document but writes nothing.
	DryRun bool

	// Now returns the creation time written into the control header.
	// Defaults to time.Now.
	Now func() time.Time
}

// Converter converts label sheets into IDoc documents.
type Converter struct {
	cfg       *config.Config
	table     *lookup.Table
	validator *validation.Validator
	fs        afs.Service
	opts      Options
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter instance.
//
// PARAMETERS:
//   - cfg: The validated configuration, with flags applied.
//   - table: The characteristic lookup table.
//   - opts: Run options.
//
// RETURNS:
//   - A new Converter instance.
func New(cfg *config.Config, table *lookup.Table, opts Options) *Converter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Converter{
		cfg:       cfg,
		table:     table,
		validator: validation.New(cfg.GTINCompanyPrefixes),
		fs:        afs.New(),
		opts:      opts,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for one file.
//
// PARAMETERS:
//   - ctx: Cancels the run before the document is read or written.
//   - input: A local path or a storage URL.
//
// RETURNS:
//   - A Result struct containing the outcome of the processing.
func (c *Converter) Run(ctx context.Context, input string) Result {
	start := time.Now()
	result := Result{
		FilePath:   input,
		OutputFile: utils.OutputFileName(input, c.cfg.OutputSuffix),
		RunID:      uuid.New().String(),
	}

	ctx = logging.WithRunID(ctx, result.RunID)
	log := logging.WithFields(ctx, "file", input)
	log.Info("conversion started")

	if err := c.convert(ctx, log, &result); err != nil {
		result.Error = err
		log.Error("conversion failed", "error", err)
		return result
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	log.Info("conversion finished",
		"records", result.Stats.Records,
		"segments", result.Stats.Segments,
		"warnings", result.Stats.Warnings,
		"skipped", result.Stats.Skipped,
		"fingerprint", result.Stats.Fingerprint)
	return result
}

func (c *Converter) convert(ctx context.Context, log *slog.Logger, result *Result) error {
	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := c.fs.DownloadWithURL(ctx, location(result.FilePath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	// =========================================================================
	// STEP 2: SPLIT ROWS
	// =========================================================================

	delim, err := c.cfg.DelimiterRune()
	if err != nil {
		return err
	}

	if workbook.IsWorkbook(result.FilePath) {
		if data, err = workbook.ToDelimited(data, delim); err != nil {
			return err
		}
		log.Debug("read first worksheet of workbook")
	}

	sh, err := sheet.Parse(data, delim)
	if err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	result.Stats.Rows = len(sh.Rows)
	result.Stats.DroppedRows = sh.Dropped
	log.Debug("parsed sheet", "rows", len(sh.Rows), "dropped", sh.Dropped)

	// =========================================================================
	// STEP 3: RESOLVE HEADER
	// =========================================================================

	mapping := schema.Resolve(sh.HeaderTokens(delim))
	result.Stats.IgnoredColumns = len(mapping.Ignored)

	for _, col := range mapping.Ignored {
		log.Info("column ignored", "column", col.Index+1, "header", col.Header)
		result.Issues.Add(types.Issue{
			Severity: types.SeverityInfo,
			Row:      sh.Header.Line,
			Field:    col.Header,
			Message:  fmt.Sprintf("column %d is not a known field and is ignored", col.Index+1),
		})
	}
	for _, col := range mapping.Shadowed {
		def, _ := label.ForHeader(col.Header)
		result.Issues.Add(types.Issue{
			Severity: types.SeverityWarning,
			Row:      sh.Header.Line,
			Field:    col.Header,
			Message: fmt.Sprintf("column %d is overridden by a later %s column",
				col.Index+1, mapping.Headers[def.Field]),
		})
	}
	if !mapping.Has(label.FieldLabel) {
		return &label.RowError{Row: sh.Header.Line, Field: label.FieldLabel, Err: label.ErrInvalidLabel}
	}

	// =========================================================================
	// STEP 4-5: BUILD AND EMIT RECORDS
	// =========================================================================

	emitter, err := idoc.NewEmitter(idoc.NewState(c.cfg.ControlNumber), idoc.Options{
		GraphicsPath: c.cfg.NormalizedGraphicsPath(),
		Extended:     c.cfg.ExtendedFields,
		Lookup:       c.table,
		Validator:    c.validator,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := idoc.NewWriter(&buf, emitter, c.cfg.EOL())
	if err := w.Open(c.opts.Now()); err != nil {
		return err
	}

	for _, row := range sh.Rows {
		rec, issues, err := label.Build(row.Line, sheet.Tokenize(row.Text, delim), mapping.Columns)
		result.Issues = append(result.Issues, issues...)
		if err != nil {
			return err
		}
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	result.Issues = append(result.Issues, w.Issues()...)

	result.Output = buf.Bytes()
	result.Stats.Records = w.Records()
	result.Stats.Segments = w.Segments()
	result.Stats.Warnings = result.Issues.Count(types.SeverityWarning)
	result.Stats.Skipped = result.Issues.Count(types.SeveritySkipped)
	logIssues(log, result.Issues)

	// =========================================================================
	// STEP 6: FINGERPRINT
	// =========================================================================

	sum, err := Fingerprint(result.Output)
	if err != nil {
		return err
	}
	result.Stats.Fingerprint = sum

	// =========================================================================
	// STEP 7: WRITE OUTPUT
	// =========================================================================

	if c.opts.DryRun {
		log.Info("dry run, output not written", "output", result.OutputFile)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.fs.Upload(ctx, location(result.OutputFile), 0644, bytes.NewReader(result.Output)); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Info("wrote output", "output", result.OutputFile, "bytes", len(result.Output))

	if c.cfg.WarningLog && len(result.Issues) > 0 {
		var report bytes.Buffer
		if err := utils.WriteIssueLog(&report, utils.IssueLog{
			RunID:     result.RunID,
			InputFile: result.FilePath,
			Generated: c.opts.Now(),
			Issues:    result.Issues,
		}); err != nil {
			return err
		}

		name := utils.WarningLogName(result.OutputFile)
		if err := c.fs.Upload(ctx, location(name), 0644, &report); err != nil {
			return fmt.Errorf("failed to write warnings log: %w", err)
		}
		result.WarningLog = name
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Fingerprint returns the hex HighwayHash-64 of a document.
func Fingerprint(data []byte) (string, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return "", err
	}
	if _, err := hash.Write(data); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

// location turns a local path into an absolute one. Storage URLs are kept.
func location(p string) string {
	if strings.Contains(p, "://") {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// logIssues reports every warning and skip of a document.
func logIssues(log *slog.Logger, issues types.Issues) {
	for _, issue := range issues {
		if issue.Severity == types.SeverityInfo {
			continue
		}
		log.Warn(issue.Message,
			"severity", string(issue.Severity),
			"row", issue.Row,
			"field", issue.Field,
			"value", issue.Value)
	}
}
