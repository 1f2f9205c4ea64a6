package storage

import (
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/parts-enricher/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBBatch(batch *models.Batch) *pgmodels.ImportBatch {
	return &pgmodels.ImportBatch{
		ID:              batch.ID,
		Name:            batch.Name,
		Status:          string(batch.Status),
		TotalItems:      batch.TotalItems,
		ProcessedItems:  batch.ProcessedItems,
		SuccessfulItems: batch.SuccessfulItems,
		FailedItems:     batch.FailedItems,
		CsvData:         batch.CSVData,
		ErrorDetails:    batch.ErrorDetails,
		CreatedAt:       batch.CreatedAt,
		UpdatedAt:       batch.UpdatedAt,
		CompletedAt:     batch.CompletedAt,
	}
}

func fromDBBatch(batch *pgmodels.ImportBatch) *models.Batch {
	return &models.Batch{
		ID:              batch.ID,
		Name:            batch.Name,
		Status:          models.BatchStatus(batch.Status),
		TotalItems:      batch.TotalItems,
		ProcessedItems:  batch.ProcessedItems,
		SuccessfulItems: batch.SuccessfulItems,
		FailedItems:     batch.FailedItems,
		CSVData:         batch.CsvData,
		ErrorDetails:    batch.ErrorDetails,
		CreatedAt:       batch.CreatedAt,
		UpdatedAt:       batch.UpdatedAt,
		CompletedAt:     batch.CompletedAt,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) (*pgmodels.Product, error) {
	dbProduct := pgmodels.Product{
		ID:               product.ID,
		BatchID:          product.BatchID,
		LineNumber:       product.LineNumber,
		Brand:            product.Brand,
		Sku:              product.SKU,
		OeNumber:         product.OENumber,
		OriginalTitle:    product.OriginalTitle,
		ScrapingStatus:   string(product.ScrapingStatus),
		AiContentStatus:  string(product.AIContentStatus),
		ProductName:      product.ProductName,
		Category:         product.Category,
		Price:            product.Price,
		EbayItemID:       product.EbayItemID,
		SeoTitle:         product.SEOTitle,
		ShortDescription: product.ShortDescription,
		LongDescription:  product.LongDescription,
		MetaDescription:  product.MetaDescription,
		CatalogURL:       product.CatalogURL,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}

	var err error
	if dbProduct.Images, err = toJSON(lo.Ternary(product.Images == nil, []string{}, product.Images)); err != nil {
		return nil, fmt.Errorf("can't encode images: %w", err)
	}
	specs := lo.Ternary(product.TechnicalSpecs == nil, models.TechnicalSpecs{}, product.TechnicalSpecs)
	if dbProduct.TechnicalSpecs, err = toJSON(specs); err != nil {
		return nil, fmt.Errorf("can't encode technical specs: %w", err)
	}
	if dbProduct.OemNumbers, err = toJSON(lo.Ternary(product.OEMNumbers == nil, []string{}, product.OEMNumbers)); err != nil {
		return nil, fmt.Errorf("can't encode oem numbers: %w", err)
	}
	tags := lo.Ternary(product.PartNumberTags == nil, []string{}, product.PartNumberTags)
	if dbProduct.PartNumberTags, err = toJSON(tags); err != nil {
		return nil, fmt.Errorf("can't encode part number tags: %w", err)
	}
	if product.EbayData != nil {
		ebayData, err := toJSON(product.EbayData)
		if err != nil {
			return nil, fmt.Errorf("can't encode marketplace data: %w", err)
		}
		dbProduct.EbayData = &ebayData
	}

	return &dbProduct, nil
}

// FromDBProduct converts postgres product model into models.Product.
func FromDBProduct(product *pgmodels.Product) (*models.Product, error) {
	appProduct := models.Product{
		ID:               product.ID,
		BatchID:          product.BatchID,
		LineNumber:       product.LineNumber,
		Brand:            product.Brand,
		SKU:              product.Sku,
		OENumber:         product.OeNumber,
		OriginalTitle:    product.OriginalTitle,
		ScrapingStatus:   models.ScrapingStatus(product.ScrapingStatus),
		AIContentStatus:  models.AIContentStatus(product.AiContentStatus),
		ProductName:      product.ProductName,
		Category:         product.Category,
		Price:            product.Price,
		EbayItemID:       product.EbayItemID,
		SEOTitle:         product.SeoTitle,
		ShortDescription: product.ShortDescription,
		LongDescription:  product.LongDescription,
		MetaDescription:  product.MetaDescription,
		CatalogURL:       product.CatalogURL,
		CreatedAt:        product.CreatedAt,
		UpdatedAt:        product.UpdatedAt,
	}

	if err := fromJSON(product.Images, &appProduct.Images); err != nil {
		return nil, fmt.Errorf("can't decode images: %w", err)
	}
	if err := fromJSON(product.TechnicalSpecs, &appProduct.TechnicalSpecs); err != nil {
		return nil, fmt.Errorf("can't decode technical specs: %w", err)
	}
	if err := fromJSON(product.OemNumbers, &appProduct.OEMNumbers); err != nil {
		return nil, fmt.Errorf("can't decode oem numbers: %w", err)
	}
	if err := fromJSON(product.PartNumberTags, &appProduct.PartNumberTags); err != nil {
		return nil, fmt.Errorf("can't decode part number tags: %w", err)
	}
	if product.EbayData != nil {
		var ebayData models.MarketplaceData
		if err := fromJSON(*product.EbayData, &ebayData); err != nil {
			return nil, fmt.Errorf("can't decode marketplace data: %w", err)
		}
		appProduct.EbayData = &ebayData
	}

	return &appProduct, nil
}

func fromDBProducts(dbProducts []pgmodels.Product) ([]models.Product, error) {
	products := make([]models.Product, 0, len(dbProducts))
	for ix := range dbProducts {
		product, err := FromDBProduct(&dbProducts[ix])
		if err != nil {
			return nil, fmt.Errorf("can't convert product %s: %w", dbProducts[ix].ID, err)
		}
		products = append(products, *product)
	}
	return products, nil
}

func toDBGeneration(generation *models.AIGeneration) *pgmodels.AiGeneration {
	return &pgmodels.AiGeneration{
		ID:               generation.ID,
		ProductID:        generation.ProductID,
		PromptType:       string(generation.PromptType),
		PromptInput:      generation.PromptInput,
		GeneratedContent: generation.GeneratedContent,
		ModelUsed:        generation.ModelUsed,
	}
}

func toDBProcessingLog(log *models.ProcessingLog) (*pgmodels.ProcessingLog, error) {
	dbLog := pgmodels.ProcessingLog{
		ID:            log.ID,
		ProductID:     log.ProductID,
		BatchID:       log.BatchID,
		OperationType: string(log.OperationType),
		Status:        string(log.Status),
		ErrorMessage:  log.ErrorMessage,
		RetryCount:    log.RetryCount,
	}

	if len(log.OperationDetails) > 0 {
		details, err := toJSON(log.OperationDetails)
		if err != nil {
			return nil, fmt.Errorf("can't encode operation details: %w", err)
		}
		dbLog.OperationDetails = &details
	}

	return &dbLog, nil
}

func fromDBPromptTemplate(template *pgmodels.PromptTemplate) *models.PromptTemplate {
	return &models.PromptTemplate{
		Slot:      models.ContentSlot(template.Slot),
		Template:  template.Template,
		UpdatedAt: template.UpdatedAt,
	}
}

func toJSON(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func fromJSON(value string, target any) error {
	if value == "" {
		return nil
	}
	return json.Unmarshal([]byte(value), target)
}
