package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	cpfFormatRe   = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)
	cepFormatRe   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	phoneFormatRe = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)
	stateRe       = regexp.MustCompile(`^[A-Z]{2}$`)
	emailRe       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
)

// maxIncome is the largest accepted monthly income.
var maxIncome = decimal.RequireFromString("999999999.99")

func digitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ValidCPF reports whether s is a well-formed CPF with correct check digits.
// Punctuation (dots and dash) is tolerated; the value is stored as submitted.
func ValidCPF(s string) bool {
	if !cpfFormatRe.MatchString(s) {
		return false
	}
	digits := digitsOnly(s)
	if len(digits) != 11 {
		return false
	}

	// CPFs with all digits identical pass the checksum but are not valid.
	allSame := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) && checkDigit(digits, 10)
}

// checkDigit verifies the CPF check digit at position pos (9 or 10) using the
// standard weighted sum: weights pos+1..2 over the preceding digits, then
// (sum*10) mod 11, with 10 and 11 mapped to 0.
func checkDigit(digits string, pos int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder == int(digits[pos]-'0')
}

// ValidCEP reports whether s is an 8-digit postal code, optionally with a
// dash after the fifth digit.
func ValidCEP(s string) bool {
	return len(s) >= 8 && len(s) <= 9 && cepFormatRe.MatchString(s)
}

// ValidPhone reports whether s looks like a Brazilian landline or mobile
// number: two-digit area code plus 8 or 9 digits, loose punctuation.
func ValidPhone(s string) bool {
	return len(s) >= 10 && len(s) <= 15 && phoneFormatRe.MatchString(s)
}

// ValidState reports whether s is a two-letter uppercase state code.
func ValidState(s string) bool {
	return stateRe.MatchString(s)
}

// ValidRG reports whether s contains 7 to 12 digits after stripping
// punctuation.
func ValidRG(s string) bool {
	if len(s) < 5 || len(s) > 20 {
		return false
	}
	n := len(digitsOnly(s))
	return n >= 7 && n <= 12
}

// ValidEmail is a loose structural email check applied when an email is
// supplied.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// NormalizeIncome converts a free-text currency string ("R$ 5.000,00",
// "1234.56") into a decimal value. When a comma is present it is taken as the
// decimal separator and dots as grouping; otherwise the dot is the decimal
// separator. Negative or implausibly large values are rejected.
func NormalizeIncome(s string) (decimal.Decimal, bool) {
	if strings.Contains(s, "-") {
		return decimal.Zero, false
	}
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, s)
	if clean == "" {
		return decimal.Zero, false
	}
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	}
	value, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	if value.IsNegative() || value.GreaterThan(maxIncome) {
		return decimal.Zero, false
	}
	return value, true
}
