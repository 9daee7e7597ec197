// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "BR"

// NormalizeDigits formats a phone number to a bare digit string
// (country+area+number, no separators, no leading plus). Leads are keyed on
// this form per store. If parsing fails or the number is invalid, it falls
// back to stripping every non-digit rune from the input.
func NormalizeDigits(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return stripNonDigits(trimmed)
	}

	return strings.TrimPrefix(phonenumbers.Format(number, phonenumbers.E164), "+")
}

func stripNonDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
