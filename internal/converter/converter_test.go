package converter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/label-idoc-converter/internal/config"
	"github.com/ginjaninja78/label-idoc-converter/internal/idoc"
	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/internal/sheet"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

func newConverter(t *testing.T, cfg *config.Config, dryRun bool) *Converter {
	t.Helper()
	table, err := lookup.Default()
	require.NoError(t, err)
	return New(cfg, table, Options{DryRun: dryRun, Now: fixedNow})
}

func writeInput(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\r\n")+"\r\n"), 0644))
	return path
}

func TestRun_SingleRecord(t *testing.T) {
	input := writeInput(t,
		"LABEL\tMATERIAL\tTEMPLATENUMBER\tCAUTION",
		"LBL001\tMAT100\tTMP01\tY",
	)

	result := newConverter(t, config.Default(), false).Run(context.Background(), input)
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	want := filepath.Join(filepath.Dir(input), "labels_IDOC.txt")
	assert.Equal(t, want, result.OutputFile)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, result.Output, data)

	lines := strings.Split(strings.TrimSuffix(string(data), idoc.CRLF), idoc.CRLF)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], idoc.TagControl))
	assert.Contains(t, lines[0], "20240102030405")
	assert.True(t, strings.HasPrefix(lines[1], idoc.TagMaterial))
	assert.Equal(t, "00000100000002", lines[1][49:63])
	assert.True(t, strings.HasPrefix(lines[2], idoc.TagLabel))
	assert.Equal(t, "00000200000103", lines[2][49:63])
	assert.True(t, strings.HasPrefix(lines[3], idoc.TagCharacteristic))
	assert.Equal(t, "00000300000204", lines[3][49:63])
	assert.Contains(t, lines[3], idoc.DefaultGraphicsPath+"Caution.tif")

	assert.Equal(t, 1, result.Stats.Rows)
	assert.Equal(t, 1, result.Stats.Records)
	assert.Equal(t, 3, result.Stats.Segments)
	assert.Len(t, result.Stats.Fingerprint, 16)
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.WarningLog)
}

func TestRun_HeaderOrderDoesNotMatter(t *testing.T) {
	a := newConverter(t, config.Default(), true).Run(context.Background(), writeInput(t,
		"LABEL\tMATERIAL\tTEMPLATENUMBER\tCAUTION\tLOGO1\tTDLINE",
		"LBL001\tMAT100\tTMP01\tY\tWECK_LOGO\tone##two",
		"LBL002\tMAT100\tTMP01\tN\t\tN/A",
	))
	b := newConverter(t, config.Default(), true).Run(context.Background(), writeInput(t,
		"TDLINE\tLOGO1\tCAUTION\tTEMPLATENUMBER\tMATERIAL\tLABEL",
		"one##two\tWECK_LOGO\tY\tTMP01\tMAT100\tLBL001",
		"N/A\t\tN\tTMP01\tMAT100\tLBL002",
	))

	require.NoError(t, a.Error)
	require.NoError(t, b.Error)
	assert.Equal(t, a.Output, b.Output)
	assert.Equal(t, a.Stats.Fingerprint, b.Stats.Fingerprint)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	input := writeInput(t, "LABEL\tTEMPLATENUMBER", "LBL001\tT1")

	result := newConverter(t, config.Default(), true).Run(context.Background(), input)
	require.NoError(t, result.Error)
	assert.NotEmpty(t, result.Output)

	_, err := os.Stat(result.OutputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_FatalRecordAbortsDocument(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		err  error
		row  int
	}{
		{
			name: "invalid label",
			rows: []string{"LABEL\tTEMPLATENUMBER", "LBL001\tT1", "XYZ002\tT1"},
			err:  label.ErrInvalidLabel,
			row:  3,
		},
		{
			name: "missing template",
			rows: []string{"LABEL\tTEMPLATENUMBER", "LBL001\tT1", "", "LBL002\t"},
			err:  label.ErrMissingTemplate,
			row:  4,
		},
		{
			name: "template column absent",
			rows: []string{"LABEL\tCAUTION", "LBL001\tY"},
			err:  label.ErrMissingTemplate,
			row:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, tt.rows...)
			result := newConverter(t, config.Default(), false).Run(context.Background(), input)

			require.Error(t, result.Error)
			assert.False(t, result.Success)
			assert.ErrorIs(t, result.Error, tt.err)

			var rowErr *label.RowError
			require.ErrorAs(t, result.Error, &rowErr)
			assert.Equal(t, tt.row, rowErr.Row)

			_, err := os.Stat(result.OutputFile)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	result := newConverter(t, config.Default(), false).Run(context.Background(),
		filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, result.Error)
	assert.False(t, result.Success)
}

func TestRun_EmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\r\n\t\t\r\n"), 0644))

	result := newConverter(t, config.Default(), false).Run(context.Background(), path)
	assert.ErrorIs(t, result.Error, sheet.ErrEmptyInput)
}

func TestRun_WarningLog(t *testing.T) {
	cfg := config.Default()
	cfg.WarningLog = true
	cfg.LineEnding = config.LineEndingLF

	input := writeInput(t,
		"LABEL\tTEMPLATENUMBER\tBARCODETEXT\tREVISION\tNOTES",
		"LBL001\tT1\t10801902123457\tA-1\tfree",
	)

	result := newConverter(t, cfg, false).Run(context.Background(), input)
	require.NoError(t, result.Error)

	assert.Equal(t, 1, result.Stats.IgnoredColumns)
	assert.Equal(t, 1, result.Stats.Warnings)
	assert.Equal(t, 1, result.Stats.Skipped)
	assert.Equal(t, 1, result.Issues.Count(types.SeverityInfo))

	require.Equal(t, result.OutputFile+".warnings.txt", result.WarningLog)
	report, err := os.ReadFile(result.WarningLog)
	require.NoError(t, err)
	assert.Contains(t, string(report), result.RunID)
	assert.Contains(t, string(report), "check digit is 7, expected 6")
	assert.Contains(t, string(report), "revision must be 1 to 3 letters or digits")

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\r")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newConverter(t, config.Default(), false).Run(ctx, writeInput(t, "LABEL\tTEMPLATENUMBER", "LBL1\tT"))
	assert.ErrorIs(t, result.Error, context.Canceled)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint([]byte("document"))
	require.NoError(t, err)
	b, err := Fingerprint([]byte("document"))
	require.NoError(t, err)
	c, err := Fingerprint([]byte("document2"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestRun_Workbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	first := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(first, "A1", &[]string{"LABEL", "MATERIAL", "TEMPLATENUMBER", "CAUTION"}))
	require.NoError(t, f.SetSheetRow(first, "A2", &[]string{"LBL001", "MAT100", "TMP01", "Y"}))

	path := filepath.Join(t.TempDir(), "labels.xlsx")
	require.NoError(t, f.SaveAs(path))

	text := writeInput(t,
		"LABEL\tMATERIAL\tTEMPLATENUMBER\tCAUTION",
		"LBL001\tMAT100\tTMP01\tY",
	)

	fromWorkbook := newConverter(t, config.Default(), false).Run(context.Background(), path)
	fromText := newConverter(t, config.Default(), true).Run(context.Background(), text)
	require.NoError(t, fromWorkbook.Error)
	require.NoError(t, fromText.Error)

	assert.Equal(t, fromText.Output, fromWorkbook.Output)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "labels_IDOC.txt"), fromWorkbook.OutputFile)
	assert.FileExists(t, fromWorkbook.OutputFile)
}
