// =============================================================================
// Label IDoc Converter - File Utilities
// =============================================================================
//
// This module contains the file naming rules and the plain-text reports
// produced by a conversion run:
//   - the output file name derived from the input file name
//   - the per-document warnings log
//   - the run summary printed after a convert run
//
// The writers in this file produce text only. Where the text ends up (a
// local file, a storage URL, stdout) is decided by the caller.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

// WarningLogSuffix is appended to an output file name to name its
// warnings log.
const WarningLogSuffix = ".warnings.txt"

const rule = "================================================================================\n"

// =============================================================================
// FILE NAMING
// =============================================================================

// OutputFileName derives the output path from an input path by replacing
// the extension with suffix. The directory is kept.
//
// EXAMPLE:
//
//	OutputFileName("labels/batch1.txt", "_IDOC.txt") == "labels/batch1_IDOC.txt"
//	OutputFileName("s3://bucket/in.tsv", "_IDOC.txt") == "s3://bucket/in_IDOC.txt"
//
// Both slash styles are accepted so that Windows paths and storage URLs
// behave the same.
func OutputFileName(input, suffix string) string {
	sep := strings.LastIndexAny(input, `/\`)
	base := input[sep+1:]

	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return input[:sep+1] + base + suffix
}

// WarningLogName returns the warnings log name of an output file.
func WarningLogName(output string) string {
	return output + WarningLogSuffix
}

// =============================================================================
// WARNINGS LOG
// =============================================================================

// IssueLog identifies the document an issue log belongs to.
type IssueLog struct {
	RunID     string
	InputFile string
	Generated time.Time
	Issues    types.Issues
}

// WriteIssueLog writes the issues of one document.
//
// PARAMETERS:
//   - w: The destination.
//   - log: The document identification and its issues.
//
// RETURNS:
//   - An error if writing fails.
func WriteIssueLog(w io.Writer, log IssueLog) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Label IDoc Converter - Warnings Log\n"+
		"Generated: %s\n"+
		"Run ID:    %s\n"+
		"Input:     %s\n"+
		"Warnings:  %d   Skipped: %d   Info: %d\n"+
		rule+"\n",
		log.Generated.Format("2006-01-02 15:04:05"),
		log.RunID,
		log.InputFile,
		log.Issues.Count(types.SeverityWarning),
		log.Issues.Count(types.SeveritySkipped),
		log.Issues.Count(types.SeverityInfo))

	for _, issue := range log.Issues {
		fmt.Fprintln(bw, issue.String())
	}

	bw.WriteString("\n" + rule + "End of Warnings Log\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write warnings log: %w", err)
	}
	return nil
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary contains summary information about a convert run.
type ProcessingSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	DryRun          bool
	ProcessedFiles  []ProcessedFileInfo
	FailedFilesList []FailedFileInfo
}

// ProcessedFileInfo contains information about a converted file.
type ProcessedFileInfo struct {
	InputFile   string
	OutputFile  string
	RunID       string
	Rows        int
	Records     int
	Segments    int
	Warnings    int
	Fingerprint string
	ProcessTime time.Duration
}

// FailedFileInfo contains information about a failed file.
type FailedFileInfo struct {
	InputFile    string
	RunID        string
	ErrorMessage string
}

// Totals returns the summed counters of all converted files.
func (s ProcessingSummary) Totals() (rows, records, segments, warnings int) {
	for _, pf := range s.ProcessedFiles {
		rows += pf.Rows
		records += pf.Records
		segments += pf.Segments
		warnings += pf.Warnings
	}
	return rows, records, segments, warnings
}

// WriteSummary writes a human-readable run summary.
func WriteSummary(w io.Writer, summary ProcessingSummary) error {
	bw := bufio.NewWriter(w)

	if len(summary.ProcessedFiles) > 0 {
		bw.WriteString("Converted Files:\n")
		bw.WriteString("--------------------------------------------------------------------------------\n")
		for _, pf := range summary.ProcessedFiles {
			output := pf.OutputFile
			if summary.DryRun {
				output += " (dry run, not written)"
			}
			fmt.Fprintf(bw, "  Input:        %s\n", pf.InputFile)
			fmt.Fprintf(bw, "  Output:       %s\n", output)
			fmt.Fprintf(bw, "  Run ID:       %s\n", pf.RunID)
			fmt.Fprintf(bw, "  Rows:         %d\n", pf.Rows)
			fmt.Fprintf(bw, "  Records:      %d\n", pf.Records)
			fmt.Fprintf(bw, "  Segments:     %d\n", pf.Segments)
			fmt.Fprintf(bw, "  Warnings:     %d\n", pf.Warnings)
			fmt.Fprintf(bw, "  Fingerprint:  %s\n", pf.Fingerprint)
			fmt.Fprintf(bw, "  Process Time: %s\n\n", pf.ProcessTime.String())
		}
	}

	if len(summary.FailedFilesList) > 0 {
		bw.WriteString("Failed Files:\n")
		bw.WriteString("--------------------------------------------------------------------------------\n")
		for _, ff := range summary.FailedFilesList {
			fmt.Fprintf(bw, "  File:   %s\n", ff.InputFile)
			fmt.Fprintf(bw, "  Run ID: %s\n", ff.RunID)
			fmt.Fprintf(bw, "  Error:  %s\n\n", ff.ErrorMessage)
		}
	}

	rows, records, segments, warnings := summary.Totals()
	fmt.Fprintf(bw, rule+
		"Total Files: %d   Converted: %d   Failed: %d\n"+
		"Rows: %d   Records: %d   Segments: %d   Warnings: %d\n"+
		"Duration: %s\n",
		len(summary.ProcessedFiles)+len(summary.FailedFilesList),
		len(summary.ProcessedFiles),
		len(summary.FailedFilesList),
		rows, records, segments, warnings,
		summary.EndTime.Sub(summary.StartTime).String())

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
