package marketplace_test

import (
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/stretchr/testify/assert"
)

func TestUnitIsEnglish(t *testing.T) {
	tests := map[string]struct {
		listing models.Listing
		want    bool
	}{
		"us seller with cyrillic title": {
			listing: models.Listing{Title: "Тормозные колодки", SellerCountry: "US"},
			want:    true,
		},
		"lowercase english country": {
			listing: models.Listing{Title: "短", SellerCountry: "gb"},
			want:    true,
		},
		"cyrillic title": {
			listing: models.Listing{Title: "Тормозные колодки BOSCH", SellerCountry: "DE"},
			want:    false,
		},
		"cjk title": {
			listing: models.Listing{Title: "刹车片 BOSCH 0986494524", SellerCountry: "CN"},
			want:    false,
		},
		"greek title": {
			listing: models.Listing{Title: "Τακάκια φρένων BOSCH", SellerCountry: "GR"},
			want:    false,
		},
		"german stop word": {
			listing: models.Listing{Title: "Bremsbeläge für VW Golf", SellerCountry: "DE"},
			want:    false,
		},
		"stop word as part of word": {
			listing: models.Listing{Title: "Brake pads delivered fast", SellerCountry: "DE"},
			want:    true,
		},
		"short title": {
			listing: models.Listing{Title: "  Pads  ", SellerCountry: "PL"},
			want:    false,
		},
		"single letter model name": {
			listing: models.Listing{Title: "Mercedes E Class Shock Absorber", SellerCountry: "DE"},
			want:    true,
		},
		"single letter series name": {
			listing: models.Listing{Title: "BMW 3 Series E i Drive Control Arm", SellerCountry: "PL"},
			want:    true,
		},
		"spanish title": {
			listing: models.Listing{Title: "Pastillas de freno para Seat Ibiza y Leon", SellerCountry: "ES"},
			want:    false,
		},
		"english title from other country": {
			listing: models.Listing{Title: "BOSCH Brake Pad Set Front", SellerCountry: "PL"},
			want:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, marketplace.IsEnglish(tt.listing))
		})
	}
}

func TestUnitFilterEnglish(t *testing.T) {
	listings := []models.Listing{
		{ItemID: "1", Title: "Тормозные колодки", SellerCountry: "RU"},
		{ItemID: "2", Title: "BOSCH Brake Pad Set", SellerCountry: "DE"},
		{ItemID: "3", Title: "Plaquettes de frein", SellerCountry: "FR"},
	}

	got := marketplace.FilterEnglish(listings)

	assert.Equal(t, []models.Listing{listings[1]}, got, "should keep only english listings")
}

func TestUnitSelectBestItem(t *testing.T) {
	listings := []models.Listing{
		{ItemID: "v1|1|0", Title: "Brake Pad Set ATE"},
		{ItemID: "v1|2|0", Title: "Bosch brake pads"},
		{ItemID: "v1|3|0", Title: "BOSCH QuietCast"},
	}

	tests := map[string]struct {
		listings []models.Listing
		brand    string
		want     *models.Listing
	}{
		"brand match case insensitive": {listings: listings, brand: "BOSCH", want: &listings[1]},
		"no brand match":               {listings: listings, brand: "febi", want: &listings[0]},
		"empty brand":                  {listings: listings, brand: "", want: &listings[0]},
		"no listings":                  {listings: nil, brand: "bosch", want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, marketplace.SelectBestItem(tt.listings, tt.brand))
		})
	}
}

func TestUnitExtractItemID(t *testing.T) {
	assert.Equal(t, "123", marketplace.ExtractItemID("v1|123|0"))
	assert.Equal(t, "123", marketplace.ExtractItemID("123"))
}

func TestUnitExtractPartNumberTags(t *testing.T) {
	details := &models.ItemDetails{
		ItemSpecifics: map[string]string{
			"OE/OEM Part Number":       "1K0698151A, 5K0698151; OEM",
			"Manufacturer Part Number": "0986494524",
			"Part Number":              "1K0698151A / AB",
			"Brand":                    "Bosch 123456",
		},
	}

	got := marketplace.ExtractPartNumberTags(details)

	assert.Equal(t, []string{"1K0698151A", "5K0698151", "0986494524"}, got,
		"should return deduplicated part numbers in field order",
	)
	assert.Empty(t, marketplace.ExtractPartNumberTags(nil))
}
