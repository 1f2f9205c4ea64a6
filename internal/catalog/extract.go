package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/gocolly/colly/v2"
	"github.com/samber/lo"
)

const (
	defaultCategory     = "Auto Parts"
	imageHostPrefix     = "https://cdn.autodoc."
	maxImages           = 5
	maxOEMNumbers       = 10
	availabilityUnknown = "Unknown"
	available           = "Available"
)

var (
	oemPatterns = []*regexp.Regexp{
		regexp.MustCompile(`OEM[^:\n]*:\s*([A-Z0-9\-\s,]+)`),
		regexp.MustCompile(`(?i)Part\s*Number[^:\n]*:\s*([A-Z0-9\-\s,]+)`),
	}
	oemSeparators   = regexp.MustCompile(`[,\s]+`)
	poundPrice      = regexp.MustCompile(`£\s*(\d+\.?\d*)`)
	number          = regexp.MustCompile(`(\d+\.?\d*)`)
	availabilityHit = regexp.MustCompile(`(?i)in\s*stock|available|delivery`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Result is part data extracted from catalog page.
type Result struct {
	URL            string
	ProductName    string
	Category       string
	Images         []string
	TechnicalSpecs models.TechnicalSpecs
	OEMNumbers     []string
	Price          *float64
	Availability   string
}

// Found returns true if page contained any part data.
func (r *Result) Found() bool {
	return len(r.Images) > 0 || len(r.TechnicalSpecs) > 0 || len(r.OEMNumbers) > 0 || r.Price != nil
}

func extract(e *colly.HTMLElement, brand, sku string) *Result {
	text := e.ChildText("body")
	return &Result{
		ProductName:    productName(e, brand, sku),
		Category:       category(e),
		Images:         images(e),
		TechnicalSpecs: technicalSpecs(e),
		OEMNumbers:     oemNumbers(text),
		Price:          price(e, text),
		Availability:   availability(text),
	}
}

func productName(e *colly.HTMLElement, brand, sku string) string {
	if name := normalize(e.ChildText("h1.listing-title__name")); name != "" {
		return name
	}

	var name string
	e.ForEach("h1, title", func(_ int, el *colly.HTMLElement) {
		text := normalize(el.Text)
		lower := strings.ToLower(text)
		if name == "" && (strings.Contains(lower, strings.ToLower(brand)) || strings.Contains(lower, strings.ToLower(sku))) {
			name = text
		}
	})
	if name != "" {
		return name
	}

	return brand + " " + sku
}

func category(e *colly.HTMLElement) string {
	var found string
	e.ForEach("span.filter-listing__item-title", func(_ int, el *colly.HTMLElement) {
		if found == "" {
			found = normalize(el.Text)
		}
	})
	if found != "" {
		return found
	}

	crumbs := lo.Filter(lo.Map(e.ChildTexts(".breadcrumbs a, .breadcrumb a"), func(s string, _ int) string {
		return normalize(s)
	}), func(s string, _ int) bool {
		return s != ""
	})
	if len(crumbs) > 0 {
		return crumbs[len(crumbs)-1]
	}

	return defaultCategory
}

func images(e *colly.HTMLElement) []string {
	var urls []string
	e.ForEach("img", func(_ int, el *colly.HTMLElement) {
		for _, attr := range []string{"src", "data-src"} {
			if src := strings.TrimSpace(el.Attr(attr)); strings.HasPrefix(src, imageHostPrefix) {
				urls = append(urls, src)
			}
		}
	})
	return lo.Slice(lo.Uniq(urls), 0, maxImages)
}

// technicalSpecs pairs dt and dd elements of every definition list.
func technicalSpecs(e *colly.HTMLElement) models.TechnicalSpecs {
	specs := models.TechnicalSpecs{}
	e.ForEach("dl", func(_ int, el *colly.HTMLElement) {
		keys := el.ChildTexts("dt")
		values := el.ChildTexts("dd")
		for ix := 0; ix < len(keys) && ix < len(values); ix++ {
			key := strings.TrimSuffix(normalize(keys[ix]), ":")
			value := normalize(values[ix])
			if key != "" && value != "" {
				specs[key] = value
			}
		}
	})
	return specs
}

func oemNumbers(text string) []string {
	var numbers []string
	for _, pattern := range oemPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, n := range oemSeparators.Split(match[1], -1) {
				if n = strings.TrimSpace(n); len(n) > 3 {
					numbers = append(numbers, n)
				}
			}
		}
	}
	return lo.Slice(lo.Uniq(numbers), 0, maxOEMNumbers)
}

func price(e *colly.HTMLElement, text string) *float64 {
	candidates := []string{}
	if match := poundPrice.FindStringSubmatch(text); match != nil {
		candidates = append(candidates, match[1])
	}
	if match := number.FindStringSubmatch(e.ChildText("[class*=price]")); match != nil {
		candidates = append(candidates, match[1])
	}
	for _, candidate := range candidates {
		if value, err := strconv.ParseFloat(candidate, 64); err == nil {
			return &value
		}
	}
	return nil
}

func availability(text string) string {
	if availabilityHit.MatchString(text) {
		return available
	}
	return availabilityUnknown
}

func normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
