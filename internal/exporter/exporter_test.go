package exporter_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/exporter"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCleanOEMNumbers(t *testing.T) {
	tests := map[string]struct {
		numbers []string
		want    []string
	}{
		"brand word and short value are dropped": {
			numbers: []string{"BOSCH", "1234567A", "AB"},
			want:    []string{"1234567A"},
		},
		"malformed numbers are dropped": {
			numbers: []string{"12.34.56", "123...", "123.", "ABCDEFG", "1234567890123456789012"},
			want:    []string{},
		},
		"excluded words match case-insensitively": {
			numbers: []string{"febi", "Genuine", "bmw", "0986494524"},
			want:    []string{"0986494524"},
		},
		"trailing dot is trimmed and duplicates removed": {
			numbers: []string{" 1K0 698 151A. ", "1K0698151A.", "1K0698151A", "1K0 698 151A"},
			want:    []string{"1K0 698 151A", "1K0698151A"},
		},
		"no numbers": {
			numbers: nil,
			want:    []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exporter.CleanOEMNumbers(tt.numbers))
		})
	}
}

func TestUnitExtractWeight(t *testing.T) {
	tests := map[string]struct {
		sources []map[string]string
		want    string
	}{
		"kilograms":             {sources: []map[string]string{{"Weight": "2.5 kg"}}, want: "2.5"},
		"grams":                 {sources: []map[string]string{{"weight": "500g"}}, want: "0.5"},
		"without unit":          {sources: []map[string]string{{"Weight (kg)": "3"}}, want: "3"},
		"first source wins":     {sources: []map[string]string{{"Weight": "1.2 kg"}, {"Weight": "9 kg"}}, want: "1.2"},
		"later source fallback": {sources: []map[string]string{{"Material": "Steel"}, {"Weight": "750 g"}}, want: "0.75"},
		"not numeric":           {sources: []map[string]string{{"Weight": "heavy"}}, want: "1"},
		"missing":               {sources: nil, want: "1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exporter.ExtractWeight(tt.sources...))
		})
	}
}

func TestUnitExtractDimension(t *testing.T) {
	tests := map[string]struct {
		name    string
		sources []map[string]string
		want    string
	}{
		"centimeters":     {name: "length", sources: []map[string]string{{"Length": "30 cm"}}, want: "30"},
		"millimeters":     {name: "width", sources: []map[string]string{{"Width": "125 mm"}}, want: "12.5"},
		"cm suffixed key": {name: "height", sources: []map[string]string{{"height_cm": "7"}}, want: "7"},
		"packaging":       {name: "packaging length", sources: []map[string]string{{"Packaging Length": "15.5 cm"}}, want: "15.5"},
		"missing":         {name: "length", sources: []map[string]string{{"Weight": "1 kg"}}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exporter.ExtractDimension(tt.name, tt.sources...))
		})
	}
}

func TestUnitWriteWooCommerceCSV(t *testing.T) {
	details := modelstesting.FakeItemDetails(func(d *models.ItemDetails) {
		d.Images = []string{"https://img.test/1.jpg", "https://img.test/ebay.jpg"}
		d.ItemSpecifics = map[string]string{"Placement on Vehicle": "Rear"}
	})
	ready := modelstesting.FakeProduct(func(p *models.Product) {
		p.Brand = "febi"
		p.SKU = "2205000049"
		p.OriginalTitle = "Shock Absorber Rear"
		p.ScrapingStatus = models.ScrapingCompleted
		p.AIContentStatus = models.AIContentGenerated
		p.SEOTitle = lo.ToPtr(`Febi 2205000049 "Rear" Shock Absorber`)
		p.ProductName = lo.ToPtr("Shock absorber")
		p.ShortDescription = lo.ToPtr("Short copy.")
		p.LongDescription = lo.ToPtr("<p>Long copy.</p>")
		p.Category = lo.ToPtr("Suspension")
		p.Price = lo.ToPtr(42.5)
		p.Images = []string{"https://img.test/1.jpg"}
		p.OEMNumbers = []string{"FEBI", "A2205000049", "AB"}
		p.TechnicalSpecs = models.TechnicalSpecs{"Weight": "2.5 kg", "Length": "450 mm", "EAN": "4027816123456"}
		p.EbayData = &models.MarketplaceData{ItemDetails: &details}
	})
	pending := modelstesting.FakeProduct(func(p *models.Product) {
		p.Brand = "bosch"
		p.SKU = "0986494524"
		p.OriginalTitle = "Brake Pad Set"
		p.ScrapingStatus = models.ScrapingPending
		p.AIContentStatus = models.AIContentPending
		p.SEOTitle = nil
		p.ProductName = nil
		p.Price = nil
		p.TechnicalSpecs = nil
		p.EbayData = nil
	})
	products := []models.Product{ready, pending}

	t.Run("all products with images and specs", func(t *testing.T) {
		var buf bytes.Buffer

		exported, err := exporter.WriteWooCommerceCSV(&buf, products, exporter.Options{IncludeImages: true, IncludeSpecs: true})

		require.NoError(t, err)
		assert.Equal(t, 2, exported)

		records := readCSV(t, buf.String())
		require.Len(t, records, 3)
		assert.Equal(t, exporter.Header(), records[0])

		row := asMap(records[0], records[1])
		assert.Equal(t, "simple", row["Type"])
		assert.Equal(t, "2205000049", row["SKU"])
		assert.Equal(t, `Febi 2205000049 "Rear" Shock Absorber`, row["Name"])
		assert.Equal(t, "Short copy.", row["Short description"])
		assert.Equal(t, "<p>Long copy.</p>", row["Description"])
		assert.Equal(t, "2.5", row["Weight (kg)"])
		assert.Equal(t, "45", row["Length (cm)"])
		assert.Equal(t, "", row["Width (cm)"])
		assert.Equal(t, "42.50", row["Regular price"])
		assert.Equal(t, "Suspension", row["Categories"])
		assert.Equal(t, "febi, auto parts", row["Tags"])
		assert.Equal(t, "https://img.test/1.jpg, https://img.test/ebay.jpg", row["Images"])
		assert.Equal(t, "4027816123456", row["EAN Number"])
		assert.Equal(t, "Rear", row["Fitting Position"])
		assert.Equal(t, "Brand", row["Attribute 1 name"])
		assert.Equal(t, "febi", row["Attribute 1 value(s)"])
		assert.Equal(t, "OEM Numbers", row["Attribute 2 name"])
		assert.Equal(t, "A2205000049", row["Attribute 2 value(s)"])
		assert.Equal(t, "A2205000049", row["Meta: oem_numbers"])
		assert.JSONEq(t, `{"EAN":"4027816123456","Length":"450 mm","Weight":"2.5 kg"}`, row["Meta: technical_specs"])

		fallback := asMap(records[0], records[2])
		assert.Equal(t, "Brake Pad Set", fallback["Name"])
		assert.Equal(t, "1", fallback["Weight (kg)"])
		assert.Equal(t, "", fallback["Regular price"])
		assert.Equal(t, "{}", fallback["Meta: technical_specs"])
	})

	t.Run("ready products without images and specs", func(t *testing.T) {
		var buf bytes.Buffer

		exported, err := exporter.WriteWooCommerceCSV(&buf, products, exporter.Options{ReadyOnly: true})

		require.NoError(t, err)
		assert.Equal(t, 1, exported)

		records := readCSV(t, buf.String())
		require.Len(t, records, 2)

		row := asMap(records[0], records[1])
		assert.Equal(t, "2205000049", row["SKU"])
		assert.Empty(t, row["Images"])
		assert.Empty(t, row["Meta: technical_specs"])
	})
}

func TestUnitWriteWooCommerceCSVQuotesEveryField(t *testing.T) {
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.SKU = "12345"
		p.SEOTitle = lo.ToPtr(`Pad "Set"`)
	})
	var buf bytes.Buffer

	_, err := exporter.WriteWooCommerceCSV(&buf, []models.Product{product}, exporter.Options{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], `"Type","SKU","Name",`), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"simple","12345","Pad ""Set""",`), lines[1])
}

func TestUnitWriteWooCommerceCSVWriteError(t *testing.T) {
	_, err := exporter.WriteWooCommerceCSV(failingWriter{}, nil, exporter.Options{})

	assert.ErrorIs(t, err, errWrite)
}

func TestUnitReady(t *testing.T) {
	tests := map[string]struct {
		scraping models.ScrapingStatus
		content  models.AIContentStatus
		want     bool
	}{
		"marketplace data":  {scraping: models.ScrapingCompleted, content: models.AIContentGenerated, want: true},
		"catalog data":      {scraping: models.ScrapingScraped, content: models.AIContentGenerated, want: true},
		"content failed":    {scraping: models.ScrapingCompleted, content: models.AIContentFailed, want: false},
		"no results":        {scraping: models.ScrapingNoResults, content: models.AIContentGenerated, want: false},
		"not processed yet": {scraping: models.ScrapingPending, content: models.AIContentPending, want: false},
		"scraping failed":   {scraping: models.ScrapingFailed, content: models.AIContentFailed, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			product := models.Product{ScrapingStatus: tt.scraping, AIContentStatus: tt.content}
			assert.Equal(t, tt.want, exporter.Ready(&product))
		})
	}
}

var errWrite = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func readCSV(t *testing.T, data string) [][]string {
	t.Helper()

	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	require.NoError(t, err)

	return records
}

func asMap(header, record []string) map[string]string {
	return lo.Associate(lo.Zip2(header, record), func(pair lo.Tuple2[string, string]) (string, string) {
		return pair.A, pair.B
	})
}
