package exporter

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

const (
	minOEMLength = 4
	maxOEMLength = 20
)

// minDottedOEMLength is minimal length of OEM number ending with dot, shorter ones are truncated listings.
const minDottedOEMLength = 8

var excludedOEMWords = []string{
	"BILSTEIN", "FEBI", "BOSCH", "SACHS", "PIERBURG", "REINZ",
	"BMW", "MERCEDES", "AUDI", "VW", "VOLKSWAGEN",
	"NUMBERS", "PART", "AUTO", "PARTS", "GENUINE", "OEM", "ORIGINAL",
}

// CleanOEMNumbers drops brand names, filler words and malformed entries from scraped OEM numbers.
// Kept numbers are trimmed, lose trailing dot and are deduplicated preserving order.
func CleanOEMNumbers(numbers []string) []string {
	cleaned := lo.FilterMap(numbers, func(number string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(number)
		if !validOEMNumber(strings.ToUpper(trimmed)) {
			return "", false
		}
		return strings.TrimSuffix(trimmed, "."), true
	})

	return lo.Uniq(cleaned)
}

func validOEMNumber(number string) bool {
	if lo.Contains(excludedOEMWords, number) {
		return false
	}

	length := len([]rune(number))
	if length < minOEMLength || length > maxOEMLength {
		return false
	}

	if strings.Count(number, ".") > 1 || strings.Contains(number, "...") {
		return false
	}

	if strings.HasSuffix(number, ".") && length < minDottedOEMLength {
		return false
	}

	return strings.IndexFunc(number, unicode.IsDigit) >= 0
}
