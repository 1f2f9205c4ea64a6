package testdata

import "github.com/MichalMitros/parts-enricher/internal/platform/models"

// ItemDetails is expected decoding result of get_item.xml.
var ItemDetails = &models.ItemDetails{
	ItemID:      "204512345678",
	Title:       "BOSCH 0986494524 Brake Pad Set Front Axle",
	Description: "<p>Genuine Bosch brake pads & wear sensor</p>",
	Condition:   "New",
	Price:       "42.5",
	Currency:    "USD",
	ItemSpecifics: map[string]string{
		"Brand":                    "Bosch",
		"Manufacturer Part Number": "0986494524",
		"OE/OEM Part Number":       "1K0698151A, 5K0698151",
	},
	Compatibility: []models.Compatibility{
		{
			Attributes: map[string]string{
				"Make":  "Volkswagen",
				"Model": "Golf",
				"Year":  "2010",
			},
			Notes: "Front axle only",
		},
	},
	Images: []string{
		"https://i.ebayimg.com/images/g/abc/s-l1600.jpg",
		"https://i.ebayimg.com/images/g/def/s-l1600.jpg",
	},
	Seller: models.Seller{
		UserID:        "parts_direct_us",
		FeedbackScore: 15234,
	},
}
