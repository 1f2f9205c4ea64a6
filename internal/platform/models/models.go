package models

import (
	"time"

	"github.com/google/uuid"
)

// Batch is CSV import batch model.
type Batch struct {
	ID              uuid.UUID
	Name            string
	Status          BatchStatus
	TotalItems      int32
	ProcessedItems  int32
	SuccessfulItems int32
	FailedItems     int32
	CSVData         string
	ErrorDetails    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// Counters are batch progress counters.
type Counters struct {
	Processed  int32
	Successful int32
	Failed     int32
}

// Product is auto part model created from single CSV row and enriched by pipeline stages.
type Product struct {
	ID              uuid.UUID
	BatchID         uuid.UUID
	LineNumber      int32
	Brand           string
	SKU             string
	OENumber        string
	OriginalTitle   string
	ScrapingStatus  ScrapingStatus
	AIContentStatus AIContentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ProductName      *string
	Category         *string
	Price            *float64
	Images           []string
	TechnicalSpecs   TechnicalSpecs
	OEMNumbers       []string
	PartNumberTags   []string
	EbayItemID       *string
	EbayData         *MarketplaceData
	SEOTitle         *string
	ShortDescription *string
	LongDescription  *string
	MetaDescription  *string
	CatalogURL       *string
}

// HasMarketplaceData returns true if product was enriched with marketplace item details.
func (p *Product) HasMarketplaceData() bool {
	return p.EbayData != nil && p.EbayData.ItemDetails != nil
}

// TechnicalSpecs maps specification name to its value.
type TechnicalSpecs map[string]string

// Merge copies specs which are not set yet.
func (s TechnicalSpecs) Merge(other TechnicalSpecs) TechnicalSpecs {
	if s == nil {
		s = TechnicalSpecs{}
	}
	for key, value := range other {
		if _, ok := s[key]; !ok && value != "" {
			s[key] = value
		}
	}
	return s
}

// MarketplaceData is marketplace search outcome stored with product.
type MarketplaceData struct {
	SearchStrategy string       `json:"searchStrategy"`
	SearchResults  []Listing    `json:"searchResults"`
	SelectedItem   *Listing     `json:"selectedItem,omitempty"`
	ItemDetails    *ItemDetails `json:"itemDetails,omitempty"`
	Timestamp      time.Time    `json:"timestamp"`
}

// Listing is marketplace search result summary.
type Listing struct {
	ItemID        string `json:"itemId"`
	Title         string `json:"title"`
	Price         string `json:"price,omitempty"`
	Currency      string `json:"currency,omitempty"`
	Condition     string `json:"condition,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	ItemURL       string `json:"itemWebUrl,omitempty"`
	SellerCountry string `json:"sellerCountry,omitempty"`
}

// ItemDetails is detailed marketplace item.
type ItemDetails struct {
	ItemID        string            `json:"itemId"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Condition     string            `json:"condition"`
	Price         string            `json:"price"`
	Currency      string            `json:"currency"`
	ItemSpecifics map[string]string `json:"itemSpecifics"`
	Compatibility []Compatibility   `json:"compatibility"`
	Images        []string          `json:"images"`
	Seller        Seller            `json:"seller"`
}

// Compatibility is single vehicle compatibility entry.
type Compatibility struct {
	Attributes map[string]string `json:"attributes"`
	Notes      string            `json:"notes,omitempty"`
}

// Seller is marketplace seller.
type Seller struct {
	UserID        string `json:"userId"`
	FeedbackScore int    `json:"feedbackScore"`
}

// AIGeneration is audit record of single generated text.
type AIGeneration struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	PromptType       ContentSlot
	PromptInput      string
	GeneratedContent string
	ModelUsed        string
	CreatedAt        time.Time
}

// ProcessingLog is pipeline operation event.
type ProcessingLog struct {
	ID               uuid.UUID
	ProductID        *uuid.UUID
	BatchID          *uuid.UUID
	OperationType    OperationType
	Status           LogStatus
	ErrorMessage     *string
	OperationDetails map[string]any
	RetryCount       int32
	CreatedAt        time.Time
}

// PromptTemplate is user customized prompt for content slot.
type PromptTemplate struct {
	Slot      ContentSlot
	Template  string
	UpdatedAt time.Time
}

// ContentSlot is generated text kind.
type ContentSlot string

const (
	SlotTitle            ContentSlot = "title"
	SlotShortDescription ContentSlot = "short_description"
	SlotLongDescription  ContentSlot = "long_description"
	SlotMetaDescription  ContentSlot = "meta_description"
)

// ContentSlots returns all content slots in generation order.
func ContentSlots() []ContentSlot {
	return []ContentSlot{SlotTitle, SlotShortDescription, SlotLongDescription, SlotMetaDescription}
}

// Valid returns true for known content slots.
func (s ContentSlot) Valid() bool {
	switch s {
	case SlotTitle, SlotShortDescription, SlotLongDescription, SlotMetaDescription:
		return true
	}
	return false
}

// Content returns product text stored for slot or empty string.
func (p *Product) Content(slot ContentSlot) string {
	var value *string
	switch slot {
	case SlotTitle:
		value = p.SEOTitle
	case SlotShortDescription:
		value = p.ShortDescription
	case SlotLongDescription:
		value = p.LongDescription
	case SlotMetaDescription:
		value = p.MetaDescription
	}
	if value == nil {
		return ""
	}
	return *value
}

// SetContent sets product text for slot.
func (p *Product) SetContent(slot ContentSlot, text string) {
	switch slot {
	case SlotTitle:
		p.SEOTitle = &text
		if p.ProductName == nil || *p.ProductName == "" {
			p.ProductName = &text
		}
	case SlotShortDescription:
		p.ShortDescription = &text
	case SlotLongDescription:
		p.LongDescription = &text
	case SlotMetaDescription:
		p.MetaDescription = &text
	}
}

// HasAllContent returns true when every content slot is filled.
func (p *Product) HasAllContent() bool {
	for _, slot := range ContentSlots() {
		if p.Content(slot) == "" {
			return false
		}
	}
	return true
}

// OperationType is processing log operation.
type OperationType string

const (
	OperationScraping        OperationType = "scraping"
	OperationEbaySearch      OperationType = "ebay_search"
	OperationGoogleSearch    OperationType = "google_search"
	OperationAIGeneration    OperationType = "ai_generation"
	OperationBatchProcessing OperationType = "batch_processing"
)

// LogStatus is processing log status.
type LogStatus string

const (
	LogStarted LogStatus = "started"
	LogSuccess LogStatus = "success"
	LogError   LogStatus = "error"
	LogBlocked LogStatus = "blocked"
	LogFailed  LogStatus = "failed"
)
