package content_test

import (
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitMaxTokens(t *testing.T) {
	assert.Equal(t, 200, content.MaxTokens(models.SlotTitle))
	assert.Equal(t, 200, content.MaxTokens(models.SlotShortDescription))
	assert.Equal(t, 800, content.MaxTokens(models.SlotLongDescription))
	assert.Equal(t, 200, content.MaxTokens(models.SlotMetaDescription))
}

func TestUnitBuildPromptCustom(t *testing.T) {
	details := modelstesting.FakeItemDetails(func(d *models.ItemDetails) {
		d.Title = "FEBI 12345 Brake Pad Set"
		d.Condition = "New"
		d.Price = "49.99"
		d.Currency = "USD"
		d.ItemSpecifics = map[string]string{"Brand": "Febi", "Placement": "Front"}
	})
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.Brand = "febi"
		p.SKU = "12345"
		p.Category = lo.ToPtr("Brake Parts")
		p.Price = lo.ToPtr(12.5)
		p.OEMNumbers = []string{"A1", "B2"}
		p.TechnicalSpecs = models.TechnicalSpecs{"Weight": "1 kg"}
		p.PartNumberTags = []string{"PN1", "PN2"}
		p.EbayData = &models.MarketplaceData{ItemDetails: &details}
	})

	tests := map[string]struct {
		template string
		want     string
	}{
		"product placeholders": {
			template: "{brand} {sku} {category} Price: £{price} {oem_numbers} {technical_specs} {unknown}",
			want:     `febi 12345 Brake Parts Price: £12.5 A1, B2 {"Weight":"1 kg"} {unknown}`,
		},
		"marketplace placeholders": {
			template: "{ebay_title} | {ebay_condition} | {ebay_price} | {ebay_specifics} | {part_numbers}",
			want:     "FEBI 12345 Brake Pad Set | New | 49.99 USD | Brand: Febi; Placement: Front | PN1, PN2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.BuildPrompt(tt.template, &product, models.SlotTitle))
		})
	}
}

func TestUnitBuildPromptCustomWithoutMarketplaceData(t *testing.T) {
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.Brand = "febi"
	})

	prompt := content.BuildPrompt("{brand} {ebay_title}", &product, models.SlotTitle)

	assert.Equal(t, "febi {ebay_title}", prompt, "marketplace placeholders should stay untouched")
}

func TestUnitBuildPromptDefault(t *testing.T) {
	details := modelstesting.FakeItemDetails(func(d *models.ItemDetails) {
		d.Title = "FEBI 12345 Brake Pad Set"
		d.ItemSpecifics = map[string]string{"Brand": "Febi"}
		d.Compatibility = []models.Compatibility{
			{Attributes: map[string]string{"Make": "BMW", "Model": "X5"}},
		}
	})

	tests := map[string]struct {
		product    models.Product
		slot       models.ContentSlot
		contains   []string
		notContain []string
	}{
		"csv data only": {
			product: modelstesting.FakeProduct(func(p *models.Product) {
				p.Brand = "febi"
				p.SKU = "12345"
				p.OriginalTitle = "Brake pad set"
			}),
			slot: models.SlotTitle,
			contains: []string{
				"Create an SEO-optimized product title",
				"Brand: febi",
				"SKU: 12345",
				"Category: Auto Part",
				"Current Name: Brake pad set",
				"OEM Numbers: N/A",
				"Technical Specifications: {}",
				"Price: N/A",
				"- Maximum 60 characters",
			},
			notContain: []string{"eBay Title"},
		},
		"enriched product": {
			product: modelstesting.FakeProduct(func(p *models.Product) {
				p.ProductName = lo.ToPtr("Febi Brake Pad")
				p.Category = lo.ToPtr("Brake Parts")
				p.Price = lo.ToPtr(12.5)
				p.OEMNumbers = []string{"A1", "B2"}
				p.ShortDescription = lo.ToPtr("Short copy.")
			}),
			slot: models.SlotLongDescription,
			contains: []string{
				"Category: Brake Parts",
				"Current Name: Febi Brake Pad",
				"OEM Numbers: A1, B2",
				"Price: £12.50",
				"Short Description: Short copy.",
				"<p>",
			},
		},
		"marketplace data": {
			product: modelstesting.FakeProduct(func(p *models.Product) {
				p.PartNumberTags = []string{"PN1"}
				p.EbayData = &models.MarketplaceData{ItemDetails: &details}
			}),
			slot: models.SlotMetaDescription,
			contains: []string{
				"eBay Title: FEBI 12345 Brake Pad Set",
				"Part Numbers: PN1",
				"Item Specifics: Brand: Febi",
				"Compatibility: BMW X5",
				"- Maximum 160 characters",
			},
			notContain: []string{"Current Name"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			prompt := content.BuildPrompt("", &tt.product, tt.slot)

			for _, part := range tt.contains {
				assert.Contains(t, prompt, part)
			}
			for _, part := range tt.notContain {
				assert.NotContains(t, prompt, part)
			}
		})
	}
}
