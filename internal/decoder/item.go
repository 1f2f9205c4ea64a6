package decoder

import (
	"strconv"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
)

// Item is model for Item node of GetItem response.
type Item struct {
	ItemID        string          `xml:"ItemID"`
	Title         string          `xml:"Title"`
	Description   string          `xml:"Description"`
	Condition     string          `xml:"ConditionDisplayName"`
	SellingStatus *SellingStatus  `xml:"SellingStatus"`
	ItemSpecifics []NameValueList `xml:"ItemSpecifics>NameValueList"`
	Compatibility []Compatibility `xml:"ItemCompatibilityList>Compatibility"`
	PictureURLs   []string        `xml:"PictureDetails>PictureURL"`
	Seller        *Seller         `xml:"Seller"`
}

// SellingStatus holds item current price.
type SellingStatus struct {
	CurrentPrice Price `xml:"CurrentPrice"`
}

// Price is amount with currency attribute.
type Price struct {
	Value    string `xml:",chardata"`
	Currency string `xml:"currencyID,attr"`
}

// NameValueList is single item specific. It may have multiple values.
type NameValueList struct {
	Name   string   `xml:"Name"`
	Values []string `xml:"Value"`
}

// Compatibility is single vehicle compatibility entry.
type Compatibility struct {
	NameValueList []NameValueList `xml:"NameValueList"`
	Notes         string          `xml:"CompatibilityNotes"`
}

// Seller is item seller.
type Seller struct {
	UserID        string `xml:"UserID"`
	FeedbackScore string `xml:"FeedbackScore"`
}

// apiError is model for Errors node.
type apiError struct {
	ShortMessage string `xml:"ShortMessage"`
	LongMessage  string `xml:"LongMessage"`
	Severity     string `xml:"SeverityCode"`
}

func (e apiError) message() string {
	if e.LongMessage != "" {
		return e.LongMessage
	}
	return e.ShortMessage
}

func toAppItemDetails(item *Item) *models.ItemDetails {
	details := &models.ItemDetails{
		ItemID:        strings.TrimSpace(item.ItemID),
		Title:         strings.TrimSpace(item.Title),
		Description:   strings.TrimSpace(item.Description),
		Condition:     strings.TrimSpace(item.Condition),
		ItemSpecifics: toSpecificsMap(item.ItemSpecifics),
		Compatibility: toAppCompatibilities(item.Compatibility),
		Images:        toImages(item.PictureURLs),
	}
	if item.SellingStatus != nil {
		details.Price = strings.TrimSpace(item.SellingStatus.CurrentPrice.Value)
		details.Currency = strings.TrimSpace(item.SellingStatus.CurrentPrice.Currency)
	}
	if item.Seller != nil {
		details.Seller.UserID = strings.TrimSpace(item.Seller.UserID)
		// Unparsable score is treated as unknown.
		details.Seller.FeedbackScore, _ = strconv.Atoi(strings.TrimSpace(item.Seller.FeedbackScore))
	}
	return details
}

// toSpecificsMap joins multiple values with comma. Entries without name or value are skipped.
func toSpecificsMap(list []NameValueList) map[string]string {
	specifics := make(map[string]string, len(list))
	for _, nv := range list {
		name := strings.TrimSpace(nv.Name)
		values := make([]string, 0, len(nv.Values))
		for _, v := range nv.Values {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		if name == "" || len(values) == 0 {
			continue
		}
		specifics[name] = strings.Join(values, ", ")
	}
	return specifics
}

func toAppCompatibilities(list []Compatibility) []models.Compatibility {
	compatibilities := make([]models.Compatibility, 0, len(list))
	for _, c := range list {
		attributes := toSpecificsMap(c.NameValueList)
		if len(attributes) == 0 {
			continue
		}
		compatibilities = append(compatibilities, models.Compatibility{
			Attributes: attributes,
			Notes:      strings.TrimSpace(c.Notes),
		})
	}
	return compatibilities
}

func toImages(urls []string) []string {
	images := make([]string, 0, len(urls))
	for _, url := range urls {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, url)
		}
	}
	return images
}
