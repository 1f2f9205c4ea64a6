package websearch_test

import (
	"strings"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var testItems = []websearch.Item{
	{
		Title:   "BOSCH 0986494524 Brake Pad Set | Autodoc",
		Link:    "https://shop.test/a",
		Snippet: "Weight: 1.2 kg. EAN: 4047024123456, Fitting position: Front Axle, Price: €42.50",
		PageMap: websearch.PageMap{
			CSEImage: []websearch.Image{{Src: "https://img.test/1.jpg"}},
			MetaTags: []map[string]string{{"og:image": "https://img.test/2.jpg"}},
		},
	},
	{
		Title:   "Bosch 0986494524 brake pads",
		Link:    "https://shop.test/b",
		Snippet: "OE 1K0698151A reference 5K0698151 Thickness: 17.5 mm",
		PageMap: websearch.PageMap{
			CSEImage: []websearch.Image{{Src: "https://img.test/1.jpg"}},
		},
	},
}

func TestUnitExtract(t *testing.T) {
	got := websearch.Extract(testItems, "bosch", "0986494524")

	want := &websearch.Result{
		Items:       testItems,
		ProductName: "BOSCH 0986494524 Brake Pad Set | Autodoc",
		Category:    "Brake Parts",
		Images:      []string{"https://img.test/1.jpg", "https://img.test/2.jpg"},
		TechnicalSpecs: models.TechnicalSpecs{
			"Weight":           "1.2 kg",
			"EAN":              "4047024123456",
			"Fitting Position": "Front Axle",
			"Thickness":        "17.5 mm",
		},
		OEMNumbers: []string{"0986494524", "4047024123456", "1K0698151A", "5K0698151"},
		Price:      lo.ToPtr(42.5),
		EAN:        "4047024123456",
	}

	assert.Equal(t, want, got, "should extract all data from search results")
}

func TestUnitExtractDefaults(t *testing.T) {
	tests := map[string]struct {
		items        []websearch.Item
		wantName     string
		wantCategory string
		wantPrice    *float64
	}{
		"title without sku": {
			items:        []websearch.Item{{Title: "Bosch catalogue", Snippet: "price: 19999.00"}},
			wantName:     "bosch 0986494524",
			wantCategory: "Auto Parts",
		},
		"long title": {
			items: []websearch.Item{{
				Title:   "bosch 0986494524 " + strings.Repeat("x", 120),
				Snippet: "Ignition coil $15",
			}},
			wantName:     "bosch 0986494524 " + strings.Repeat("x", 83) + "...",
			wantCategory: "Ignition Parts",
			wantPrice:    lo.ToPtr(15.0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := websearch.Extract(tt.items, "bosch", "0986494524")

			assert.Equal(t, tt.wantName, got.ProductName)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Empty(t, got.Images)
			assert.Equal(t, "0986494524", got.OEMNumbers[0], "sku should be first oem number")
		})
	}
}

func TestUnitQueries(t *testing.T) {
	queries := websearch.Queries("febi", "01089")

	assert.Len(t, queries, 6)
	assert.Equal(t, `"febi" "01089" auto parts specifications`, queries[0])
	assert.Equal(t, `"febi" "01089" "fitting position"`, queries[5])
}
