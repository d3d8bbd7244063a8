package schema

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// trimTitle strips surrounding whitespace and capitalizes the first letter
// of each word. Applying it twice yields the same result.
func trimTitle(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}

// phoneFormatRunes are the characters a phone number may carry besides
// digits: "+1 (555) 123-4567" style formatting.
const phoneFormatRunes = "+-() "

// validPhone accepts a number when, after removing formatting characters,
// at least one character remains and all of them are digits. A value made
// of formatting characters only carries no number and is rejected.
func validPhone(s string) bool {
	digits := strings.Map(func(r rune) rune {
		if strings.ContainsRune(phoneFormatRunes, r) {
			return -1
		}
		return r
	}, s)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normLower trims and lowercases an enumerated value before membership is
// checked, so "Electronics" stores as "electronics".
func normLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// trimSpacePtr trims an optional string, collapsing a whitespace-only value
// to "not present".
func trimSpacePtr(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// roundMoney applies the repository-wide monetary precision: two decimal
// places at validation and serialization time. Sums are taken over exact
// decimals and rounded only here, so rounding never compounds.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MoneyString renders a monetary value with exactly two decimal places.
func MoneyString(d decimal.Decimal) string {
	return roundMoney(d).StringFixed(2)
}

// isoTime renders a timestamp for the map form: RFC 3339 with nanoseconds,
// or nil for the zero time.
func isoTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
