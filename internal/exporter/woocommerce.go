package exporter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/samber/lo"
)

var header = []string{
	"Type", "SKU", "Name", "Published", "Featured", "Visibility",
	"Short description", "Description",
	"Date sale price starts", "Date sale price ends",
	"Tax status", "Tax class", "In stock?", "Stock", "Backorders allowed?", "Sold individually?",
	"Weight (kg)", "Length (cm)", "Width (cm)", "Height (cm)",
	"Allow customer reviews?", "Purchase note", "Sale price", "Regular price",
	"Categories", "Tags", "Shipping class", "Images",
	"Download limit", "Download expiry days", "Parent", "Grouped products", "Upsells", "Cross-sells",
	"External URL", "Button text", "Position",
	"EAN Number", "Packing Length (cm)", "Packing Width (cm)", "Packing Height (cm)", "Fitting Position",
	"Attribute 1 name", "Attribute 1 value(s)", "Attribute 1 visible", "Attribute 1 global",
	"Attribute 2 name", "Attribute 2 value(s)", "Attribute 2 visible", "Attribute 2 global",
	"Meta: brand", "Meta: oem_numbers", "Meta: technical_specs",
}

// Options controls WooCommerce export content.
type Options struct {
	IncludeImages bool
	IncludeSpecs  bool
	// ReadyOnly skips products without scraped data or generated content.
	ReadyOnly bool
}

// Header returns WooCommerce CSV column names.
func Header() []string {
	return append([]string(nil), header...)
}

// Ready returns true when product has scraped data and generated content.
func Ready(product *models.Product) bool {
	scraped := product.ScrapingStatus == models.ScrapingScraped || product.ScrapingStatus == models.ScrapingCompleted
	return scraped && product.AIContentStatus == models.AIContentGenerated
}

// WriteWooCommerceCSV writes WooCommerce product import CSV.
// Every field is quoted with inner quotes doubled. Returns number of exported products.
func WriteWooCommerceCSV(w io.Writer, products []models.Product, opts Options) (int, error) {
	bw := bufio.NewWriter(w)

	if err := writeRecord(bw, header); err != nil {
		return 0, fmt.Errorf("can't write csv header: %w", err)
	}

	exported := 0
	for ix := range products {
		product := &products[ix]
		if opts.ReadyOnly && !Ready(product) {
			continue
		}

		record, err := productRecord(product, opts)
		if err != nil {
			return exported, fmt.Errorf("can't build csv record for product %s: %w", product.ID, err)
		}

		if err := writeRecord(bw, record); err != nil {
			return exported, fmt.Errorf("can't write csv record: %w", err)
		}
		exported++
	}

	if err := bw.Flush(); err != nil {
		return exported, fmt.Errorf("can't flush csv: %w", err)
	}

	return exported, nil
}

func productRecord(product *models.Product, opts Options) ([]string, error) {
	specs := map[string]string(product.TechnicalSpecs)
	itemSpecifics := map[string]string{}
	if product.HasMarketplaceData() {
		itemSpecifics = product.EbayData.ItemDetails.ItemSpecifics
	}

	oemNumbers := strings.Join(CleanOEMNumbers(product.OEMNumbers), ", ")

	images := ""
	if opts.IncludeImages {
		images = strings.Join(productImages(product), ", ")
	}

	technicalSpecs := ""
	if opts.IncludeSpecs {
		encoded, err := json.Marshal(lo.Ternary(specs == nil, map[string]string{}, specs))
		if err != nil {
			return nil, fmt.Errorf("can't encode technical specs: %w", err)
		}
		technicalSpecs = string(encoded)
	}

	price := ""
	if product.Price != nil {
		price = fmt.Sprintf("%.2f", *product.Price)
	}

	ean := firstNonEmpty(lookup(specs, "EAN"), lookup(itemSpecifics, "EAN"))
	fittingPosition := firstNonEmpty(
		lookup(specs, "Fitting Position"),
		lookup(itemSpecifics, "Fitting Position"),
		lookup(itemSpecifics, "Placement on Vehicle"),
	)

	return []string{
		"simple",                                         // Type
		product.SKU,                                      // SKU
		productName(product),                             // Name
		"1",                                              // Published
		"0",                                              // Featured
		"visible",                                        // Visibility
		deref(product.ShortDescription),                  // Short description
		deref(product.LongDescription),                   // Description
		"",                                               // Date sale price starts
		"",                                               // Date sale price ends
		"taxable",                                        // Tax status
		"",                                               // Tax class
		"1",                                              // In stock?
		"100",                                            // Stock
		"0",                                              // Backorders allowed?
		"0",                                              // Sold individually?
		ExtractWeight(specs, itemSpecifics),              // Weight (kg)
		ExtractDimension("length", specs, itemSpecifics), // Length (cm)
		ExtractDimension("width", specs, itemSpecifics),  // Width (cm)
		ExtractDimension("height", specs, itemSpecifics), // Height (cm)
		"1",                                              // Allow customer reviews?
		"",                                               // Purchase note
		"",                                               // Sale price
		price,                                            // Regular price
		deref(product.Category),                          // Categories
		product.Brand + ", auto parts",                   // Tags
		"",                                               // Shipping class
		images,                                           // Images
		"",                                               // Download limit
		"",                                               // Download expiry days
		"",                                               // Parent
		"",                                               // Grouped products
		"",                                               // Upsells
		"",                                               // Cross-sells
		"",                                               // External URL
		"",                                               // Button text
		"0",                                              // Position
		ean,                                              // EAN Number
		ExtractDimension("packaging length", specs),      // Packing Length (cm)
		ExtractDimension("packaging width", specs),       // Packing Width (cm)
		ExtractDimension("packaging height", specs),      // Packing Height (cm)
		fittingPosition,                                  // Fitting Position
		"Brand",                                          // Attribute 1 name
		product.Brand,                                    // Attribute 1 value(s)
		"1",                                              // Attribute 1 visible
		"0",                                              // Attribute 1 global
		"OEM Numbers",                                    // Attribute 2 name
		oemNumbers,                                       // Attribute 2 value(s)
		"1",                                              // Attribute 2 visible
		"0",                                              // Attribute 2 global
		product.Brand,                                    // Meta: brand
		oemNumbers,                                       // Meta: oem_numbers
		technicalSpecs,                                   // Meta: technical_specs
	}, nil
}

// productName prefers generated SEO title over scraped and uploaded names.
func productName(product *models.Product) string {
	return firstNonEmpty(
		deref(product.SEOTitle),
		deref(product.ProductName),
		product.OriginalTitle,
	)
}

func productImages(product *models.Product) []string {
	images := append([]string(nil), product.Images...)
	if product.HasMarketplaceData() {
		images = append(images, product.EbayData.ItemDetails.Images...)
	}
	return lo.Uniq(lo.Compact(images))
}

func writeRecord(w *bufio.Writer, record []string) error {
	for ix, field := range record {
		if ix > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func firstNonEmpty(values ...string) string {
	value, _ := lo.Coalesce(values...)
	return value
}
