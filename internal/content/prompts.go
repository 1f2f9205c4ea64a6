package content

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/samber/lo"
)

const (
	notAvailable      = "N/A"
	defaultCategory   = "Auto Part"
	maxEbayDescRunes  = 1000
	maxCompatibleRows = 5

	longDescriptionTokens = 800
	defaultTokens         = 200
)

type instruction struct {
	task         string
	requirements []string
}

var instructions = map[models.ContentSlot]instruction{
	models.SlotTitle: {
		task: "Create an SEO-optimized product title for this auto part.",
		requirements: []string{
			"Maximum 60 characters",
			"Include brand, part type and SKU",
			"Use terms customers search for",
			"Return only the title without quotes",
		},
	},
	models.SlotShortDescription: {
		task: "Write a short product description for this auto part.",
		requirements: []string{
			"2-3 sentences, maximum 160 words",
			"Mention the main benefit and fitment",
			"Plain text, no HTML",
		},
	},
	models.SlotLongDescription: {
		task: "Write a detailed product description for this auto part.",
		requirements: []string{
			"Use simple HTML: <p>, <ul>, <li>, <strong>",
			"Cover features, technical specifications and compatibility",
			"List OEM reference numbers when available",
			"No prices and no shipping information",
		},
	},
	models.SlotMetaDescription: {
		task: "Write a meta description for this auto part page.",
		requirements: []string{
			"Maximum 160 characters",
			"Include brand and SKU",
			"End with a call to action",
			"Return only the meta description",
		},
	},
}

// MaxTokens returns completion token limit for slot.
func MaxTokens(slot models.ContentSlot) int {
	if slot == models.SlotLongDescription {
		return longDescriptionTokens
	}
	return defaultTokens
}

// BuildPrompt returns prompt for slot. Non-empty custom template has its placeholders substituted,
// otherwise built-in prompt is used.
func BuildPrompt(custom string, product *models.Product, slot models.ContentSlot) string {
	values := placeholders(product)

	if strings.TrimSpace(custom) != "" {
		return replacer(values).Replace(custom)
	}

	return defaultPrompt(values, product.HasMarketplaceData(), slot)
}

func replacer(values map[string]string) *strings.Replacer {
	keys := lo.Keys(values)
	sort.Strings(keys)

	oldnew := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		oldnew = append(oldnew, "{"+key+"}", values[key])
	}

	return strings.NewReplacer(oldnew...)
}

// placeholders returns values of template placeholders.
// Marketplace placeholders are set only for products with item details.
func placeholders(p *models.Product) map[string]string {
	values := map[string]string{
		"brand":             p.Brand,
		"sku":               p.SKU,
		"oe_number":         p.OENumber,
		"category":          lo.FromPtrOr(p.Category, ""),
		"price":             "",
		"oem_numbers":       strings.Join(p.OEMNumbers, ", "),
		"technical_specs":   specsJSON(p.TechnicalSpecs),
		"product_name":      lo.FromPtrOr(p.ProductName, ""),
		"short_description": lo.FromPtrOr(p.ShortDescription, ""),
		"original_title":    p.OriginalTitle,
	}
	if p.Price != nil {
		values["price"] = strconv.FormatFloat(*p.Price, 'f', -1, 64)
	}

	if !p.HasMarketplaceData() {
		return values
	}

	details := p.EbayData.ItemDetails
	values["ebay_title"] = details.Title
	values["ebay_description"] = truncateRunes(details.Description, maxEbayDescRunes)
	values["ebay_condition"] = details.Condition
	values["ebay_price"] = strings.TrimSpace(details.Price + " " + details.Currency)
	values["ebay_specifics"] = specificsList(details.ItemSpecifics)
	values["ebay_compatibility"] = compatibilityList(details.Compatibility)
	values["part_numbers"] = strings.Join(p.PartNumberTags, ", ")

	return values
}

func defaultPrompt(values map[string]string, hasMarketplaceData bool, slot models.ContentSlot) string {
	ins := instructions[slot]

	var b strings.Builder
	b.WriteString(ins.task)
	b.WriteString("\n\nProduct information:\n")

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, orNotAvailable(value))
	}

	line("Brand", values["brand"])
	line("SKU", values["sku"])
	line("OE Number", values["oe_number"])
	line("Category", lo.Ternary(values["category"] != "", values["category"], defaultCategory))

	if hasMarketplaceData {
		line("eBay Title", values["ebay_title"])
		line("Condition", values["ebay_condition"])
		line("Part Numbers", values["part_numbers"])
		line("Item Specifics", values["ebay_specifics"])
		line("Compatibility", values["ebay_compatibility"])
		line("eBay Description", values["ebay_description"])
	} else {
		name := values["product_name"]
		if name == "" {
			name = values["original_title"]
		}
		line("Current Name", name)
		line("OEM Numbers", values["oem_numbers"])
		line("Technical Specifications", values["technical_specs"])
	}

	price := notAvailable
	if values["price"] != "" {
		if value, err := strconv.ParseFloat(values["price"], 64); err == nil {
			price = fmt.Sprintf("£%.2f", value)
		}
	}
	line("Price", price)

	if slot != models.SlotShortDescription && values["short_description"] != "" {
		line("Short Description", values["short_description"])
	}

	b.WriteString("\nRequirements:\n")
	for _, requirement := range ins.requirements {
		b.WriteString("- ")
		b.WriteString(requirement)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func orNotAvailable(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

func specsJSON(specs models.TechnicalSpecs) string {
	if len(specs) == 0 {
		return "{}"
	}
	// map keys are sorted by encoding/json.
	out, err := json.Marshal(specs)
	if err != nil {
		return "{}"
	}
	return string(out)
}

func specificsList(specifics map[string]string) string {
	keys := lo.Keys(specifics)
	sort.Strings(keys)

	return strings.Join(lo.Map(keys, func(key string, _ int) string {
		return key + ": " + specifics[key]
	}), "; ")
}

func compatibilityList(compatibility []models.Compatibility) string {
	if len(compatibility) == 0 {
		return ""
	}

	rows := make([]string, 0, maxCompatibleRows)
	for _, entry := range lo.Slice(compatibility, 0, maxCompatibleRows) {
		keys := lo.Keys(entry.Attributes)
		sort.Strings(keys)
		rows = append(rows, strings.Join(lo.Map(keys, func(key string, _ int) string {
			return entry.Attributes[key]
		}), " "))
	}

	summary := strings.Join(rows, "; ")
	if len(compatibility) > maxCompatibleRows {
		summary += fmt.Sprintf(" (and %d more)", len(compatibility)-maxCompatibleRows)
	}
	return summary
}

func truncateRunes(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
