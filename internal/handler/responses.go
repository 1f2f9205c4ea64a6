package handler

import (
	"time"

	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/importer"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type batchResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	TotalItems      int32      `json:"totalItems"`
	ProcessedItems  int32      `json:"processedItems"`
	SuccessfulItems int32      `json:"successfulItems"`
	FailedItems     int32      `json:"failedItems"`
	ErrorDetails    *string    `json:"errorDetails"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
}

func toBatchResponse(b *models.Batch) batchResponse {
	return batchResponse{
		ID:              b.ID,
		Name:            b.Name,
		Status:          string(b.Status),
		TotalItems:      b.TotalItems,
		ProcessedItems:  b.ProcessedItems,
		SuccessfulItems: b.SuccessfulItems,
		FailedItems:     b.FailedItems,
		ErrorDetails:    b.ErrorDetails,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CompletedAt:     b.CompletedAt,
	}
}

type productResponse struct {
	ID               uuid.UUID               `json:"id"`
	BatchID          uuid.UUID               `json:"batchId"`
	LineNumber       int32                   `json:"lineNumber"`
	Brand            string                  `json:"brand"`
	SKU              string                  `json:"sku"`
	OENumber         string                  `json:"oeNumber"`
	OriginalTitle    string                  `json:"originalTitle"`
	ScrapingStatus   string                  `json:"scrapingStatus"`
	AIContentStatus  string                  `json:"aiContentStatus"`
	ProductName      *string                 `json:"productName"`
	Category         *string                 `json:"category"`
	Price            *float64                `json:"price"`
	Images           []string                `json:"images"`
	TechnicalSpecs   models.TechnicalSpecs   `json:"technicalSpecs"`
	OEMNumbers       []string                `json:"oemNumbers"`
	PartNumberTags   []string                `json:"partNumberTags"`
	EbayItemID       *string                 `json:"ebayItemId"`
	EbayData         *models.MarketplaceData `json:"ebayData"`
	SEOTitle         *string                 `json:"seoTitle"`
	ShortDescription *string                 `json:"shortDescription"`
	LongDescription  *string                 `json:"longDescription"`
	MetaDescription  *string                 `json:"metaDescription"`
	CatalogURL       *string                 `json:"catalogUrl"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func toProductResponse(p *models.Product) productResponse {
	return productResponse{
		ID:               p.ID,
		BatchID:          p.BatchID,
		LineNumber:       p.LineNumber,
		Brand:            p.Brand,
		SKU:              p.SKU,
		OENumber:         p.OENumber,
		OriginalTitle:    p.OriginalTitle,
		ScrapingStatus:   string(p.ScrapingStatus),
		AIContentStatus:  string(p.AIContentStatus),
		ProductName:      p.ProductName,
		Category:         p.Category,
		Price:            p.Price,
		Images:           p.Images,
		TechnicalSpecs:   p.TechnicalSpecs,
		OEMNumbers:       p.OEMNumbers,
		PartNumberTags:   p.PartNumberTags,
		EbayItemID:       p.EbayItemID,
		EbayData:         p.EbayData,
		SEOTitle:         p.SEOTitle,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		MetaDescription:  p.MetaDescription,
		CatalogURL:       p.CatalogURL,
		UpdatedAt:        p.UpdatedAt,
	}
}

type generationResponse struct {
	ID               uuid.UUID `json:"id"`
	PromptType       string    `json:"promptType"`
	GeneratedContent string    `json:"generatedContent"`
	ModelUsed        string    `json:"modelUsed"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toGenerationResponse(g models.AIGeneration, _ int) generationResponse {
	return generationResponse{
		ID:               g.ID,
		PromptType:       string(g.PromptType),
		GeneratedContent: g.GeneratedContent,
		ModelUsed:        g.ModelUsed,
		CreatedAt:        g.CreatedAt,
	}
}

type templateResponse struct {
	Slot      string    `json:"slot"`
	Template  string    `json:"template"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTemplateResponse(t models.PromptTemplate, _ int) templateResponse {
	return templateResponse{
		Slot:      string(t.Slot),
		Template:  t.Template,
		UpdatedAt: t.UpdatedAt,
	}
}

// partDataResponse is part data found by web search or catalog scraper.
type partDataResponse struct {
	ProductName    string                `json:"productName,omitempty"`
	Category       string                `json:"category,omitempty"`
	Images         []string              `json:"images"`
	TechnicalSpecs models.TechnicalSpecs `json:"technicalSpecs"`
	OEMNumbers     []string              `json:"oemNumbers"`
	Price          *float64              `json:"price,omitempty"`
	EAN            string                `json:"ean,omitempty"`
	Availability   string                `json:"availability,omitempty"`
}

func fromWebResult(r *websearch.Result) partDataResponse {
	return partDataResponse{
		ProductName:    r.ProductName,
		Category:       r.Category,
		Images:         r.Images,
		TechnicalSpecs: r.TechnicalSpecs,
		OEMNumbers:     r.OEMNumbers,
		Price:          r.Price,
		EAN:            r.EAN,
	}
}

func fromCatalogResult(r *catalog.Result) partDataResponse {
	return partDataResponse{
		ProductName:    r.ProductName,
		Category:       r.Category,
		Images:         r.Images,
		TechnicalSpecs: r.TechnicalSpecs,
		OEMNumbers:     r.OEMNumbers,
		Price:          r.Price,
		Availability:   r.Availability,
	}
}

type validationResponse struct {
	TotalRows int                 `json:"totalRows"`
	ValidRows int                 `json:"validRows"`
	Errors    []importer.RowError `json:"errors"`
}

func toValidationResponse(v *importer.Validation) *validationResponse {
	if v == nil {
		return nil
	}
	return &validationResponse{
		TotalRows: v.TotalRows,
		ValidRows: len(v.Rows),
		Errors:    lo.Ternary(v.Errors == nil, []importer.RowError{}, v.Errors),
	}
}
