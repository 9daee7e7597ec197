package domain

import "strings"

// hotKeywords is the purchase-intent vocabulary, mixed English/Portuguese to
// match the storefronts' audience. Matching is case-insensitive substring.
var hotKeywords = []string{
	"price",
	"financing",
	"installments",
	"entrada",
	"parcelas",
	"trade-in",
	"troca",
	"how much",
	"valor",
}

// IsHotMessage reports whether a free-text message signals purchase intent.
// Pure and deterministic; an empty message is never hot.
func IsHotMessage(message string) bool {
	if message == "" {
		return false
	}

	lower := strings.ToLower(message)
	for _, keyword := range hotKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
