package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

func TestCheckDigit(t *testing.T) {
	assert.Equal(t, 6, CheckDigit("1080190212345"))
	assert.Equal(t, 5, CheckDigit("0080190200012"))
	assert.Equal(t, 6, CheckDigit("5401234567890"))
	assert.Equal(t, 1, CheckDigit("1999999999999"))
	assert.Equal(t, 0, CheckDigit("0000000000000"))
}

func TestGTIN(t *testing.T) {
	v := New(nil)

	tests := []struct {
		name     string
		value    string
		emit     bool
		messages []string
	}{
		{"valid registered", "10801902123456", true, nil},
		{"valid indicator zero", "00801902000125", true, nil},
		{"valid second prefix", "14026704000316", true, nil},
		{"thirteen digits", "4026704000316", true, nil},
		{"bad check digit", "10801902123457", true, []string{"check digit is 7, expected 6"}},
		{"indicator and prefix", "54012345678906", true, []string{
			"packaging indicator 5 is greater than 4",
			"company prefix 4012345 is not registered",
		}},
		{"unregistered prefix", "19999999999991", true, []string{"company prefix 9999999 is not registered"}},
		{"too short", "123456", false, []string{"barcode must be 13 or 14 digits, got 6"}},
		{"too long", "108019021234567", false, []string{"barcode must be 13 or 14 digits, got 15"}},
		{"not digits", "1080190212345A", false, []string{"barcode must contain only digits"}},
		{"empty", "", false, []string{"barcode must contain only digits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emit, issues := v.GTIN(4, "BARCODETEXT", tt.value)
			assert.Equal(t, tt.emit, emit)

			var messages []string
			for _, issue := range issues {
				messages = append(messages, issue.Message)
				assert.Equal(t, 4, issue.Row)
				assert.Equal(t, "BARCODETEXT", issue.Field)
				if tt.emit {
					assert.Equal(t, types.SeverityWarning, issue.Severity)
				} else {
					assert.Equal(t, types.SeveritySkipped, issue.Severity)
				}
			}
			assert.Equal(t, tt.messages, messages)
		})
	}
}

func TestGTIN_SingleDigitChangeIsDetected(t *testing.T) {
	v := New(nil)
	valid := "10801902123456"

	emit, issues := v.GTIN(1, "BARCODETEXT", valid)
	require.True(t, emit)
	require.Empty(t, issues)

	for pos := 0; pos < len(valid); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			changed := valid[:pos] + string(d) + valid[pos+1:]

			emit, issues := v.GTIN(1, "BARCODETEXT", changed)
			assert.True(t, emit, changed)

			found := false
			for _, issue := range issues {
				if strings.HasPrefix(issue.Message, "check digit") {
					found = true
				}
			}
			assert.True(t, found, "no check digit warning for %s", changed)
		}
	}
}

func TestGTIN_CustomPrefixes(t *testing.T) {
	v := New([]string{"9999999"})

	emit, issues := v.GTIN(1, "BARCODETEXT", "19999999999991")
	assert.True(t, emit)
	assert.Empty(t, issues)

	_, issues = v.GTIN(1, "BARCODETEXT", "10801902123456")
	require.Len(t, issues, 1)
	assert.Equal(t, "company prefix 0801902 is not registered", issues[0].Message)
}

func TestRevision(t *testing.T) {
	v := New(nil)

	for _, ok := range []string{"A", "01", "AB1", "z"} {
		emit, issues := v.Revision(2, "REVISION", ok)
		assert.True(t, emit, ok)
		assert.Empty(t, issues, ok)
	}

	for _, bad := range []string{"", "ABCD", "A-1", "A B"} {
		emit, issues := v.Revision(2, "REVISION", bad)
		assert.False(t, emit, bad)
		require.Len(t, issues, 1, bad)
		assert.Equal(t, types.SeveritySkipped, issues[0].Severity)
	}
}
