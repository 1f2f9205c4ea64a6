package marketplace

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/samber/lo"
)

// minTitleLength is minimal trimmed title length of listing from non English speaking country.
const minTitleLength = 10

var englishCountries = map[string]struct{}{
	"US": {}, "GB": {}, "CA": {}, "AU": {}, "IE": {}, "NZ": {},
}

var nonLatinScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Arabic,
	unicode.Cyrillic,
	unicode.Greek,
}

// stopWords are common German, French, Spanish and Italian words. Matched as whole words.
// Single letters are left out, they show up in English titles as model names like E Class.
var stopWords = lo.Associate([]string{
	"für", "mit", "und", "der", "die", "das", "von", "zu", "im", "am",
	"pour", "avec", "et", "le", "la", "les", "de", "du", "au", "aux",
	"para", "con", "el", "los", "las", "del", "al",
	"per", "il", "lo", "gli", "di",
}, func(word string) (string, struct{}) {
	return word, struct{}{}
})

var (
	partNumberSeparators = regexp.MustCompile(`[,;|/\s]+`)
	lettersOnly          = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// partNumberFields are item specifics holding part numbers.
var partNumberFields = []string{
	"OE/OEM Part Number",
	"Other Part Number",
	"Interchange Part Number",
	"Manufacturer Part Number",
	"Part Number",
	"OEM Part Number",
	"Reference OE/OEM Number",
	"Superseded Part Number",
}

// FilterEnglish returns listings which are likely English.
// Listings from English speaking countries are always kept.
func FilterEnglish(listings []models.Listing) []models.Listing {
	return lo.Filter(listings, func(listing models.Listing, _ int) bool {
		return IsEnglish(listing)
	})
}

// IsEnglish returns true if listing is from English speaking country or its title looks English.
func IsEnglish(listing models.Listing) bool {
	if _, ok := englishCountries[strings.ToUpper(listing.SellerCountry)]; ok {
		return true
	}
	if hasNonLatinCharacters(listing.Title) {
		return false
	}
	if hasStopWord(listing.Title) {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(listing.Title)) >= minTitleLength
}

func hasNonLatinCharacters(text string) bool {
	for _, r := range text {
		if unicode.In(r, nonLatinScripts...) {
			return true
		}
	}
	return false
}

func hasStopWord(text string) bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		if _, ok := stopWords[word]; ok {
			return true
		}
	}
	return false
}

// SelectBestItem returns first listing with brand in title or first listing if none matches.
func SelectBestItem(listings []models.Listing, brand string) *models.Listing {
	if len(listings) == 0 {
		return nil
	}
	brand = strings.ToLower(strings.TrimSpace(brand))
	if brand != "" {
		for ix := range listings {
			if strings.Contains(strings.ToLower(listings[ix].Title), brand) {
				return &listings[ix]
			}
		}
	}
	return &listings[0]
}

// ExtractItemID returns legacy item id from compound id like "v1|123|0".
func ExtractItemID(compoundID string) string {
	parts := strings.Split(compoundID, "|")
	if len(parts) > 1 {
		return parts[1]
	}
	return compoundID
}

// ExtractPartNumberTags returns deduplicated part numbers found in item specifics.
func ExtractPartNumberTags(details *models.ItemDetails) []string {
	if details == nil {
		return []string{}
	}
	var tags []string
	for _, field := range partNumberFields {
		value, ok := details.ItemSpecifics[field]
		if !ok {
			continue
		}
		for _, part := range partNumberSeparators.Split(value, -1) {
			part = strings.TrimSpace(part)
			if len(part) <= 2 || lettersOnly.MatchString(part) {
				continue
			}
			tags = append(tags, part)
		}
	}
	return lo.Uniq(tags)
}
