package idoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/label-idoc-converter/internal/label"
	"github.com/ginjaninja78/label-idoc-converter/internal/lookup"
	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

const testPath = `G:\ART\`

var created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// record builds a record holding exactly the given fields.
func record(t *testing.T, row int, fields map[label.Field]string) *label.Record {
	t.Helper()
	columns := label.Columns{}
	var tokens []string
	for _, def := range label.Vocabulary() {
		if v, ok := fields[def.Field]; ok {
			columns[def.Field] = len(tokens)
			tokens = append(tokens, v)
		}
	}
	rec, _, err := label.Build(row, tokens, columns)
	require.NoError(t, err)
	return rec
}

func newEmitter(t *testing.T, extended bool) *Emitter {
	t.Helper()
	table, err := lookup.Default()
	require.NoError(t, err)
	e, err := NewEmitter(NewState(""), Options{GraphicsPath: testPath, Extended: extended, Lookup: table})
	require.NoError(t, err)
	return e
}

func prefix(tag string, seq, owner, level string) string {
	return tag + strings.Repeat(" ", 19) + Client + DefaultControlNumber + seq + owner + level
}

func pad(s string, n int) string {
	return s + strings.Repeat(" ", n-len(s))
}

// region returns the unpadded 255-character region of a characteristic.
func region(seg Segment) string {
	return strings.TrimRight(seg.Payload[nameWidth+valueWidth:], " ")
}

func names(segments []Segment) []string {
	var out []string
	for _, seg := range segments {
		if seg.Tag == TagCharacteristic {
			out = append(out, strings.TrimSpace(seg.Payload[:nameWidth]))
		}
	}
	return out
}

// =============================================================================
// DOCUMENT
// =============================================================================

func TestWriter_SingleRecordDocument(t *testing.T) {
	e := newEmitter(t, false)
	var buf bytes.Buffer
	w := NewWriter(&buf, e, "")

	require.NoError(t, w.Open(created))
	require.NoError(t, w.WriteRecord(record(t, 2, map[label.Field]string{
		label.FieldLabel:    "LBL001",
		label.FieldMaterial: "MAT100",
		label.FieldTemplate: "TMP01",
		"CAUTION":           "Y",
	})))
	require.NoError(t, w.Flush())

	lines := strings.Split(buf.String(), CRLF)
	require.Len(t, lines, 5)
	assert.Equal(t, "", lines[4])

	assert.True(t, strings.HasPrefix(lines[0], "EDI_DC40  "+Client+DefaultControlNumber+"740"))
	assert.Contains(t, lines[0], "20240102030405")

	assert.Equal(t, prefix(TagMaterial, "000001", "000000", "02")+pad("MAT100", 18), lines[1])
	assert.Equal(t, prefix(TagLabel, "000002", "000001", "03")+pad("LBL001", 18)+pad("TMP01", 30), lines[2])
	assert.Equal(t,
		prefix(TagCharacteristic, "000003", "000002", "04")+pad("CAUTION", 30)+pad("Y", 30)+pad(testPath+"Caution.tif", 255),
		lines[3])

	assert.Equal(t, 1, w.Records())
	assert.Equal(t, 3, w.Segments())
	assert.Empty(t, w.Issues())
}

func TestWriter_LineFeed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, newEmitter(t, false), LF)
	require.NoError(t, w.Open(created))
	require.NoError(t, w.Flush())

	assert.True(t, strings.HasSuffix(buf.String(), "Material_EN         \n"))
	assert.NotContains(t, buf.String(), "\r")
}

func TestWriter_RecordBeforeOpen(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, newEmitter(t, false), "")
	err := w.WriteRecord(record(t, 2, map[label.Field]string{label.FieldLabel: "LBL1", label.FieldTemplate: "T"}))
	assert.ErrorIs(t, err, ErrNotOpened)
}

func TestControlHeader(t *testing.T) {
	h := ControlHeader("7654321", created)

	assert.Len(t, h, 524)
	assert.True(t, strings.HasPrefix(h, "EDI_DC40  5000000000007654321740 3012  Z1BTDOC"))
	assert.Contains(t, h, "ZSC_BTEND")
	assert.Contains(t, h, "SAPMEP    LS  MEPCLNT500")
	assert.Contains(t, h, "I041      US  BARTENDER")
	assert.True(t, strings.HasSuffix(h, "20240102030405"+strings.Repeat(" ", 112)+"Material_EN"+strings.Repeat(" ", 9)))
}

// =============================================================================
// NUMBERING
// =============================================================================

func TestEmit_SequenceAndOwners(t *testing.T) {
	e := newEmitter(t, false)

	rows := []map[label.Field]string{
		{label.FieldLabel: "LBL001", label.FieldMaterial: "MAT100", label.FieldTemplate: "T1", "CAUTION": "Y"},
		{label.FieldLabel: "LBL002", label.FieldMaterial: "MAT100", label.FieldTemplate: "T1", "CAUTION": "Y"},
		{label.FieldLabel: "LBL003", label.FieldMaterial: "MAT200", label.FieldTemplate: "T1", "CAUTION": "Y"},
	}

	var all []Segment
	for i, fields := range rows {
		segs, _, err := e.Emit(record(t, i+2, fields))
		require.NoError(t, err)
		all = append(all, segs...)
	}

	type link struct {
		tag   string
		seq   int
		owner int
	}
	var got []link
	for _, s := range all {
		got = append(got, link{s.Tag, s.Seq, s.Owner})
	}

	// A label is owned by the material segment that opened it, so the label
	// right after a material carries that material's sequence number and
	// takes the next one itself. Rows sharing a material keep pointing
	// at the one material segment.
	assert.Equal(t, []link{
		{TagMaterial, 1, 0},
		{TagLabel, 2, 1},
		{TagCharacteristic, 3, 2},
		{TagLabel, 4, 1},
		{TagCharacteristic, 5, 4},
		{TagMaterial, 6, 0},
		{TagLabel, 7, 6},
		{TagCharacteristic, 8, 7},
	}, got)
	assert.Equal(t, 8, e.State().Emitted())
}

func TestEmit_SequenceIsStrictlyIncreasing(t *testing.T) {
	e := newEmitter(t, true)
	var last int
	for i := 0; i < 20; i++ {
		segs, _, err := e.Emit(record(t, i+2, map[label.Field]string{
			label.FieldLabel:    "LBL" + string(rune('A'+i)),
			label.FieldMaterial: "MAT" + string(rune('A'+i/3)),
			label.FieldTemplate: "T1",
			label.FieldTDLine:   "first##second##third",
			"LOGO1":             "WECK_LOGO",
			"SINGLEUSE":         "N",
		}))
		require.NoError(t, err)
		for _, s := range segs {
			require.Equal(t, last+1, s.Seq)
			require.Less(t, s.Owner, s.Seq)
			last = s.Seq
		}
	}
}

func TestEmit_EmptyMaterial(t *testing.T) {
	e := newEmitter(t, false)
	segs, _, err := e.Emit(record(t, 2, map[label.Field]string{
		label.FieldLabel: "LBL1", label.FieldMaterial: "", label.FieldTemplate: "T",
	}))
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, TagLabel, segs[0].Tag)
	assert.Equal(t, 1, segs[0].Seq)
	assert.Equal(t, 0, segs[0].Owner)
}

func TestEmit_IndependentStates(t *testing.T) {
	a := newEmitter(t, false)
	b := newEmitter(t, false)
	fields := map[label.Field]string{label.FieldLabel: "LBL1", label.FieldMaterial: "M", label.FieldTemplate: "T"}

	for i := 0; i < 3; i++ {
		_, _, err := a.Emit(record(t, 2, fields))
		require.NoError(t, err)
	}
	segs, _, err := b.Emit(record(t, 2, fields))
	require.NoError(t, err)
	assert.Equal(t, 1, segs[0].Seq)
}

func TestEmit_MissingTemplateConsumesNothing(t *testing.T) {
	e := newEmitter(t, false)
	segs, _, err := e.Emit(record(t, 5, map[label.Field]string{
		label.FieldLabel: "LBL1", label.FieldMaterial: "M", label.FieldTemplate: "", "CAUTION": "Y",
	}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, label.ErrMissingTemplate))
	var rowErr *label.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 5, rowErr.Row)
	assert.Nil(t, segs)
	assert.Equal(t, 0, e.State().Emitted())
}

// =============================================================================
// CHARACTERISTICS
// =============================================================================

func TestEmit_Characteristics(t *testing.T) {
	e := newEmitter(t, false)
	segs, issues, err := e.Emit(record(t, 2, map[label.Field]string{
		label.FieldLabel:    "LBL1",
		label.FieldTemplate: "T",
		label.FieldRevision: "B",
		"SIZE":              `"7 Fr"`,
		"CAUTION":           "yes",
		"SINGLEUSE":         "N",
		"LATEXFREE":         "N/A",
		"RXONLY":            "",
		"LOGO1":             "weck_logo",
		"LOGO2":             "CUSTOM_ART",
	}))
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, []string{"REVISION", "SIZE", "CAUTION", "SINGLEUSE", "LOGO1", "LOGO2"}, names(segs))

	byName := map[string]Segment{}
	for _, s := range segs {
		if s.Tag == TagCharacteristic {
			byName[strings.TrimSpace(s.Payload[:nameWidth])] = s
			assert.Len(t, s.Payload, nameWidth+valueWidth+assetWidth)
			assert.Equal(t, LevelCharacteristic, s.Level)
		}
	}

	assert.Equal(t, "B", region(byName["REVISION"]))
	assert.Equal(t, "7 Fr", region(byName["SIZE"]))
	assert.Equal(t, testPath+"Caution.tif", region(byName["CAUTION"]))
	assert.Equal(t, pad("Y", valueWidth), byName["CAUTION"].Payload[nameWidth:nameWidth+valueWidth])
	assert.Equal(t, testPath+"blank-01.tif", region(byName["SINGLEUSE"]))
	assert.Equal(t, pad("N", valueWidth), byName["SINGLEUSE"].Payload[nameWidth:nameWidth+valueWidth])
	assert.Equal(t, testPath+"Wecklogo.tif", region(byName["LOGO1"]))
	assert.Equal(t, testPath+"CUSTOM_ART.tif", region(byName["LOGO2"]))
}

func TestEmit_ValidationOutcomes(t *testing.T) {
	e := newEmitter(t, false)

	segs, issues, err := e.Emit(record(t, 3, map[label.Field]string{
		label.FieldLabel:    "LBL1",
		label.FieldTemplate: "T",
		label.FieldRevision: "A-1",
		label.FieldBarcode:  "10801902123457",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"BARCODETEXT"}, names(segs))
	assert.Equal(t, 1, issues.Count(types.SeverityWarning))
	assert.Equal(t, 1, issues.Count(types.SeveritySkipped))

	_, issues, err = e.Emit(record(t, 4, map[label.Field]string{
		label.FieldLabel:    "LBL2",
		label.FieldTemplate: "T",
		label.FieldRevision: "A1",
		label.FieldBarcode:  "12AB",
	}))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeveritySkipped, issues[0].Severity)
	assert.Equal(t, 4, issues[0].Row)
}

func TestEmit_OverlongValidatedValuesSkipped(t *testing.T) {
	tests := []struct {
		name  string
		field label.Field
		value string
	}{
		{"15-digit barcode", label.FieldBarcode, "012345678905123"},
		{"4-character revision", label.FieldRevision, "ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEmitter(t, false)
			segs, issues, err := e.Emit(record(t, 5, map[label.Field]string{
				label.FieldLabel:    "LBL1",
				label.FieldTemplate: "T",
				tt.field:            tt.value,
			}))
			require.NoError(t, err)

			assert.Empty(t, names(segs))
			require.Len(t, issues, 1)
			assert.Equal(t, types.SeveritySkipped, issues[0].Severity)
			assert.Equal(t, string(tt.field), issues[0].Field)
			assert.Equal(t, tt.value, issues[0].Value)
		})
	}
}

func TestEmit_ExtendedFields(t *testing.T) {
	fields := map[label.Field]string{
		label.FieldLabel: "LBL1", label.FieldTemplate: "T", "VERSION": "2", "KEEPDRY": "Y", "CAUTION": "Y",
	}

	segs, _, err := newEmitter(t, false).Emit(record(t, 2, fields))
	require.NoError(t, err)
	assert.Equal(t, []string{"CAUTION"}, names(segs))

	segs, _, err = newEmitter(t, true).Emit(record(t, 2, fields))
	require.NoError(t, err)
	assert.Equal(t, []string{"VERSION", "CAUTION", "KEEPDRY"}, names(segs))
}

// =============================================================================
// TEXT
// =============================================================================

func TestEmit_TextSegments(t *testing.T) {
	e := newEmitter(t, false)
	segs, _, err := e.Emit(record(t, 2, map[label.Field]string{
		label.FieldLabel:    "LBL1",
		label.FieldTemplate: "T",
		label.FieldTDLine:   "Sterile##Do not reuse",
	}))
	require.NoError(t, err)
	require.Len(t, segs, 3)

	first, second := segs[1], segs[2]
	assert.Equal(t, TagText, first.Tag)
	assert.Equal(t, 1, first.Owner)
	assert.Equal(t, 1, second.Owner)
	assert.Equal(t, textObject+textID+pad("LBL1", 70)+pad("Sterile##", 70)+"*", first.Payload)
	assert.Equal(t, textObject+textID+pad("LBL1", 70)+pad("Do not reuse", 70)+"/", second.Payload)
}

func TestEmit_TextNotApplicable(t *testing.T) {
	segs, _, err := newEmitter(t, false).Emit(record(t, 2, map[label.Field]string{
		label.FieldLabel: "LBL1", label.FieldTemplate: "T", label.FieldTDLine: "n/a",
	}))
	require.NoError(t, err)
	assert.Len(t, segs, 1)
}

func TestChunks(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("word ", 20))

	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Sterile", []string{"Sterile"}},
		{"two", "Line one##Line two", []string{"Line one##", "Line two"}},
		{"trailing marker", "A##", []string{"A##"}},
		{"only marker", "##", []string{"##"}},
		{"empty middle", "A####B", []string{"A##", "##", "B"}},
		{"hard break", strings.Repeat("a", 100), []string{strings.Repeat("a", 70), strings.Repeat("a", 30)}},
		{"word wrap", words, []string{
			strings.TrimSpace(strings.Repeat("word ", 14)),
			strings.TrimSpace(strings.Repeat("word ", 6)),
		}},
		{"marker on own line", strings.Repeat("a", 70) + "##b", []string{strings.Repeat("a", 70), "##", "b"}},
		{"spaces across the break", "first##" + strings.Repeat(" ", 75) + "second", []string{"first##", "second"}},
		{"spaces only before marker", strings.Repeat(" ", 75) + "##b", []string{"##", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(tt.block)
			assert.Equal(t, tt.want, got)
			for _, line := range got {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), TextWidth)
			}
		})
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5))
	assert.Equal(t, "abc", fit("abcdef", 3))
	assert.Equal(t, "ÄÖÜ", fit("ÄÖÜß", 3))
	assert.Equal(t, "ß ", fit("ß", 2))
}

func TestSegment_PrefixWidth(t *testing.T) {
	s := Segment{Tag: TagLabel, Control: "1", Seq: 12, Owner: 3, Level: LevelLabel}
	assert.Len(t, s.String(), 63)
	assert.Equal(t, prefix(TagLabel, "000012", "000003", "03")[:42]+"1      000012000003"+"03", s.String())
}
