// =============================================================================
// Label IDoc Converter - Validation Engine
// =============================================================================
//
// This module validates individual characteristic values right before they
// are written. Two outcomes are possible for a failing value:
//
//   SKIP  - the value is structurally wrong (a revision that is not 1-3
//           letters/digits, a barcode that is not 13 or 14 digits). The
//           segment is omitted and a warning is reported.
//
//   WARN  - the value is well-formed but suspicious (a GTIN check digit that
//           does not match, an unexpected packaging indicator or company
//           prefix). The segment is STILL written and a warning is reported.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/ginjaninja78/label-idoc-converter/internal/types"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// DefaultCompanyPrefixes are the registered GS1 company prefixes checked for
// GTINs with a non-zero packaging indicator.
var DefaultCompanyPrefixes = []string{"0801902", "4026704"}

// MaxIndicator is the highest packaging indicator digit accepted.
const MaxIndicator = '4'

// revisionPattern matches a valid drawing revision.
var revisionPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,3}$`)

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks characteristic values.
type Validator struct {
	companyPrefixes []string
}

// New creates a Validator. When prefixes is empty DefaultCompanyPrefixes
// are used.
func New(prefixes []string) *Validator {
	if len(prefixes) == 0 {
		prefixes = DefaultCompanyPrefixes
	}
	return &Validator{companyPrefixes: slices.Clone(prefixes)}
}

// Revision validates a revision value.
//
// RETURNS:
//   - true if the segment should be written.
//   - the issues found (a single SKIP issue when invalid).
func (v *Validator) Revision(row int, field, value string) (bool, types.Issues) {
	if revisionPattern.MatchString(value) {
		return true, nil
	}
	return false, types.Issues{{
		Severity: types.SeveritySkipped,
		Row:      row,
		Field:    field,
		Value:    value,
		Message:  "revision must be 1 to 3 letters or digits",
	}}
}

// GTIN validates a barcode value.
//
// VALIDATION STEPS:
//   1. Every character must be a decimal digit           (SKIP)
//   2. Length must be 13 or 14                          (SKIP)
//   3. For 14 digits, the last digit is the check digit  (WARN)
//   4. The packaging indicator must be at most 4         (WARN)
//   5. A non-zero indicator requires a known company prefix (WARN)
//
// A 13-digit value is read as a GTIN-14 with a leading zero for steps 4-5.
//
// RETURNS:
//   - true if the segment should be written.
//   - every issue found.
func (v *Validator) GTIN(row int, field, value string) (bool, types.Issues) {
	var issues types.Issues
	issue := func(severity types.Severity, format string, args ...any) {
		issues.Add(types.Issue{
			Severity: severity,
			Row:      row,
			Field:    field,
			Value:    value,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if !isDigits(value) {
		issue(types.SeveritySkipped, "barcode must contain only digits")
		return false, issues
	}
	if len(value) != 13 && len(value) != 14 {
		issue(types.SeveritySkipped, "barcode must be 13 or 14 digits, got %d", len(value))
		return false, issues
	}

	gtin := value
	if len(gtin) == 13 {
		gtin = "0" + gtin
	} else if want := CheckDigit(gtin[:13]); int(gtin[13]-'0') != want {
		issue(types.SeverityWarning, "check digit is %c, expected %d", gtin[13], want)
	}

	indicator := gtin[0]
	if indicator > MaxIndicator {
		issue(types.SeverityWarning, "packaging indicator %c is greater than %c", indicator, MaxIndicator)
	}
	if indicator != '0' {
		if company := gtin[1:8]; !slices.Contains(v.companyPrefixes, company) {
			issue(types.SeverityWarning, "company prefix %s is not registered", company)
		}
	}

	return true, issues
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// CheckDigit computes the GS1 check digit of a digit string: digits are
// weighted 3 and 1 alternately starting with 3 at the rightmost digit, and
// the check digit brings the weighted sum up to a multiple of ten.
// The input must contain only digits.
func CheckDigit(digits string) int {
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if (len(digits)-1-i)%2 == 0 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// isDigits reports whether s is a non-empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
