package websearch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/samber/lo"
)

const (
	defaultCategory = "Auto Parts"
	maxNameLength   = 100
	maxImages       = 5
	maxOEMNumbers   = 15
	maxPrice        = 10000
)

var categoryKeywords = []string{
	"brake", "engine", "suspension", "filter", "pump", "sensor", "bearing",
	"clutch", "transmission", "radiator", "gasket", "seal", "timing", "belt",
	"coolant", "thermostat", "alternator", "starter", "ignition", "fuel",
}

type specPattern struct {
	key     string
	pattern *regexp.Regexp
}

var specPatterns = []specPattern{
	{key: "Weight", pattern: regexp.MustCompile(`(?i)weight[:\s]+([0-9.,]+\s*(?:kg|g|lbs|oz))`)},
	{key: "Dimensions", pattern: regexp.MustCompile(`(?i)dimensions?[:\s]+([0-9.,x\s]+(?:mm|cm|inch))`)},
	{key: "Diameter", pattern: regexp.MustCompile(`(?i)diameter[:\s]+([0-9.,]+\s*(?:mm|cm|inch))`)},
	{key: "Length", pattern: regexp.MustCompile(`(?i)length[:\s]+([0-9.,]+\s*(?:mm|cm|inch))`)},
	{key: "Width", pattern: regexp.MustCompile(`(?i)width[:\s]+([0-9.,]+\s*(?:mm|cm|inch))`)},
	{key: "Height", pattern: regexp.MustCompile(`(?i)height[:\s]+([0-9.,]+\s*(?:mm|cm|inch))`)},
	{key: "EAN", pattern: regexp.MustCompile(`(?i)EAN[:\s]+([0-9]{8,14})`)},
	{key: "Fitting Position", pattern: regexp.MustCompile(`(?i)fitting\s*position[:\s]+([^,\n.]+)`)},
	{key: "Packaging Length", pattern: regexp.MustCompile(`(?i)packaging\s*length[:\s]*([0-9.,]+\s*(?:cm|mm))`)},
	{key: "Packaging Width", pattern: regexp.MustCompile(`(?i)packaging\s*width[:\s]*([0-9.,]+\s*(?:cm|mm))`)},
	{key: "Packaging Height", pattern: regexp.MustCompile(`(?i)packaging\s*height[:\s]*([0-9.,]+\s*(?:cm|mm))`)},
	{key: "Package Dimensions", pattern: regexp.MustCompile(`(?i)package\s*dimensions?[:\s]*([0-9.,x\s]+(?:cm|mm))`)},
	{key: "Inner Diameter", pattern: regexp.MustCompile(`(?i)inner\s*diameter[:\s]+([0-9.,]+\s*(?:mm|cm))`)},
	{key: "Outer Diameter", pattern: regexp.MustCompile(`(?i)outer\s*diameter[:\s]+([0-9.,]+\s*(?:mm|cm))`)},
	{key: "Thickness", pattern: regexp.MustCompile(`(?i)thickness[:\s]+([0-9.,]+\s*(?:mm|cm))`)},
	{key: "Material", pattern: regexp.MustCompile(`(?i)material[:\s]+([^,\n.]+)`)},
	{key: "Manufacturer", pattern: regexp.MustCompile(`(?i)manufacturer[:\s]+([^,\n.]+)`)},
}

var oemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:OEM|OE|part\s*number|article\s*number|reference)[:\s#№]*([A-Z0-9\-.]{4,})`),
	regexp.MustCompile(`(?i)№[:\s]*([A-Z0-9\-.]{4,})`),
	regexp.MustCompile(`([A-Z0-9\-.]{6,})`),
}

var (
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`[£$€](\d+\.?\d*)`),
		regexp.MustCompile(`(\d+\.?\d*)\s*[£$€]`),
		regexp.MustCompile(`(?i)price[:\s]*[£$€]?(\d+\.?\d*)`),
	}
	eanPattern    = regexp.MustCompile(`(?i)EAN[:\s]*([0-9]{8,14})`)
	urlLikePrefix = regexp.MustCompile(`^(http|www|com|org)`)
)

// Extract builds enrichment data from search results.
func Extract(items []Item, brand, sku string) *Result {
	result := &Result{
		Items:          items,
		ProductName:    productName(items, brand, sku),
		Category:       category(items),
		Images:         images(items),
		TechnicalSpecs: technicalSpecs(items),
		OEMNumbers:     oemNumbers(items, sku),
		Price:          price(items),
	}
	if ean := ean(items); ean != "" {
		result.EAN = ean
		result.TechnicalSpecs["EAN"] = ean
	}
	return result
}

func productName(items []Item, brand, sku string) string {
	name := fmt.Sprintf("%s %s", brand, sku)
	if len(items) > 0 {
		title := strings.ToLower(items[0].Title)
		if strings.Contains(title, strings.ToLower(brand)) && strings.Contains(title, strings.ToLower(sku)) {
			name = items[0].Title
		}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength]) + "..."
	}
	return name
}

// category returns first keyword found in results as "<Keyword> Parts".
func category(items []Item) string {
	for _, item := range items {
		text := strings.ToLower(item.text())
		for _, keyword := range categoryKeywords {
			if strings.Contains(text, keyword) {
				return strings.ToUpper(keyword[:1]) + keyword[1:] + " Parts"
			}
		}
	}
	return defaultCategory
}

func images(items []Item) []string {
	var urls []string
	for _, item := range items {
		if len(item.PageMap.CSEImage) > 0 && item.PageMap.CSEImage[0].Src != "" {
			urls = append(urls, item.PageMap.CSEImage[0].Src)
		}
		if len(item.PageMap.MetaTags) > 0 && item.PageMap.MetaTags[0]["og:image"] != "" {
			urls = append(urls, item.PageMap.MetaTags[0]["og:image"])
		}
	}
	return lo.Slice(lo.Uniq(urls), 0, maxImages)
}

// technicalSpecs returns specs found in results. First match of each spec wins.
func technicalSpecs(items []Item) models.TechnicalSpecs {
	specs := models.TechnicalSpecs{}
	for _, item := range items {
		text := item.text()
		for _, sp := range specPatterns {
			if _, ok := specs[sp.key]; ok {
				continue
			}
			if match := sp.pattern.FindStringSubmatch(text); match != nil {
				if value := strings.TrimSpace(match[1]); value != "" {
					specs[sp.key] = value
				}
			}
		}
	}
	return specs
}

// oemNumbers returns sku followed by part numbers found in results.
func oemNumbers(items []Item, sku string) []string {
	numbers := []string{sku}
	for _, item := range items {
		text := item.text()
		for _, pattern := range oemPatterns {
			for _, match := range pattern.FindAllStringSubmatch(text, -1) {
				number := match[1]
				if len(number) < 4 || len(number) > 25 {
					continue
				}
				if urlLikePrefix.MatchString(strings.ToLower(number)) {
					continue
				}
				numbers = append(numbers, number)
			}
		}
	}
	return lo.Slice(lo.Uniq(numbers), 0, maxOEMNumbers)
}

func price(items []Item) *float64 {
	for _, item := range items {
		text := item.text()
		for _, pattern := range pricePatterns {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil || value <= 0 || value >= maxPrice {
				continue
			}
			return &value
		}
	}
	return nil
}

func ean(items []Item) string {
	for _, item := range items {
		if match := eanPattern.FindStringSubmatch(item.text()); match != nil {
			return match[1]
		}
	}
	return ""
}
