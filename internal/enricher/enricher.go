package enricher

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Marketplace --filename marketplace.go
//go:generate mockery --name WebSearch --filename web_search.go
//go:generate mockery --name Catalog --filename catalog.go

const maxImages = 10

var (
	// ErrStorage wraps database failures.
	ErrStorage = errors.New("storage failure")
	// ErrCatalogDisabled is returned by EnrichFromCatalog when no catalog scraper is configured.
	ErrCatalogDisabled = errors.New("catalog scraper is disabled")
	// ErrNotFound is returned when source had no data for product.
	ErrNotFound = errors.New("no product data found")
)

// Storage stores enriched products and processing logs.
type Storage interface {
	SaveEnrichment(ctx context.Context, product *models.Product) error
	AddProcessingLog(ctx context.Context, log *models.ProcessingLog) error
}

// Marketplace searches marketplace listings.
type Marketplace interface {
	Search(ctx context.Context, q marketplace.Query) *marketplace.Result
}

// WebSearch searches web for product pages.
type WebSearch interface {
	Search(ctx context.Context, brand, sku string) (*websearch.Result, error)
}

// Catalog scrapes parts catalog page.
type Catalog interface {
	Scrape(ctx context.Context, brand, sku string) (*catalog.Result, error)
}

// Option is custom configuration of Enricher.
type Option func(e *Enricher)

// WithCatalog enables catalog scraping stage.
func WithCatalog(c Catalog) Option {
	return func(e *Enricher) {
		e.catalog = c
	}
}

// WithNow sets custom time source.
func WithNow(now func() time.Time) Option {
	return func(e *Enricher) {
		e.now = now
	}
}

// Enricher runs single enrichment source for product, merges its data and stores the product.
type Enricher struct {
	storage     Storage
	marketplace Marketplace
	web         WebSearch
	catalog     Catalog
	logger      *zerolog.Logger
	now         func() time.Time
}

// NewEnricher returns new Enricher.
func NewEnricher(storage Storage, market Marketplace, web WebSearch, logger *zerolog.Logger, ops ...Option) *Enricher {
	enr := &Enricher{
		storage:     storage,
		marketplace: market,
		web:         web,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}

	for _, op := range ops {
		op(enr)
	}

	return enr
}

// CatalogEnabled returns true if catalog scraper is configured.
func (e *Enricher) CatalogEnabled() bool {
	return e.catalog != nil
}

// QueryFor returns marketplace query for product.
func QueryFor(product *models.Product) marketplace.Query {
	return marketplace.Query{
		Brand:    product.Brand,
		SKU:      product.SKU,
		OENumber: product.OENumber,
	}
}

// EnrichFromMarketplace searches marketplace and stores what was found.
// Product becomes completed when listings were found, no_results otherwise.
// Upstream failures are reported in result, returned error is always ErrStorage.
func (e *Enricher) EnrichFromMarketplace(
	ctx context.Context,
	product *models.Product,
	query marketplace.Query,
) (*marketplace.Result, error) {
	e.addLog(ctx, product.ID, models.OperationEbaySearch, models.LogStarted, "", map[string]any{
		"brand":    query.Brand,
		"sku":      query.SKU,
		"oeNumber": query.OENumber,
	})

	result := e.marketplace.Search(ctx, query)

	if !result.Found() {
		if product.ScrapingStatus.CanTransitionTo(models.ScrapingNoResults) {
			product.ScrapingStatus = models.ScrapingNoResults
		}
		if err := e.save(ctx, product); err != nil {
			return result, err
		}
		message := lo.Ternary(result.Error != "", result.Error, ErrNotFound.Error())
		e.addLog(ctx, product.ID, models.OperationEbaySearch, models.LogError, message, nil)
		return result, nil
	}

	mergeMarketplace(product, result, e.now())
	product.ScrapingStatus = models.ScrapingCompleted

	if err := e.save(ctx, product); err != nil {
		return result, err
	}

	e.addLog(ctx, product.ID, models.OperationEbaySearch, models.LogSuccess, result.Error, map[string]any{
		"strategy":       result.Strategy,
		"itemId":         result.ItemID,
		"resultsCount":   len(result.Listings),
		"hasItemDetails": result.Details != nil,
	})

	return result, nil
}

// EnrichFromWeb searches web, merges extracted data and stores product keeping its status.
// Upstream failures are returned as is, database failures wrapped with ErrStorage.
func (e *Enricher) EnrichFromWeb(ctx context.Context, product *models.Product) (*websearch.Result, error) {
	e.addLog(ctx, product.ID, models.OperationGoogleSearch, models.LogStarted, "", map[string]any{
		"brand": product.Brand,
		"sku":   product.SKU,
	})

	result, err := e.web.Search(ctx, product.Brand, product.SKU)
	if err != nil {
		e.addLog(ctx, product.ID, models.OperationGoogleSearch, models.LogError, err.Error(), nil)
		return nil, fmt.Errorf("can't search web: %w", err)
	}

	mergeWeb(product, result)

	if err := e.save(ctx, product); err != nil {
		return result, err
	}

	e.addLog(ctx, product.ID, models.OperationGoogleSearch, models.LogSuccess, "", map[string]any{
		"resultsCount": len(result.Items),
		"specsCount":   len(result.TechnicalSpecs),
		"oemCount":     len(result.OEMNumbers),
	})

	return result, nil
}

// EnrichFromCatalog scrapes catalog page, merges extracted data and stores product.
// Product keeps its scraping status, catalog data only supplements marketplace match.
func (e *Enricher) EnrichFromCatalog(ctx context.Context, product *models.Product) (*catalog.Result, error) {
	if e.catalog == nil {
		return nil, ErrCatalogDisabled
	}

	e.addLog(ctx, product.ID, models.OperationScraping, models.LogStarted, "", map[string]any{
		"brand": product.Brand,
		"sku":   product.SKU,
	})

	result, err := e.catalog.Scrape(ctx, product.Brand, product.SKU)
	if err != nil {
		e.addLog(ctx, product.ID, models.OperationScraping, models.LogError, err.Error(), nil)
		return nil, fmt.Errorf("can't scrape catalog: %w", err)
	}

	if !result.Found() {
		e.addLog(ctx, product.ID, models.OperationScraping, models.LogError, ErrNotFound.Error(), map[string]any{
			"url": result.URL,
		})
		return result, ErrNotFound
	}

	mergeCatalog(product, result)

	if err := e.save(ctx, product); err != nil {
		return result, err
	}

	e.addLog(ctx, product.ID, models.OperationScraping, models.LogSuccess, "", map[string]any{
		"url":          result.URL,
		"specsCount":   len(result.TechnicalSpecs),
		"availability": result.Availability,
	})

	return result, nil
}

func (e *Enricher) save(ctx context.Context, product *models.Product) error {
	if err := e.storage.SaveEnrichment(ctx, product); err != nil {
		return fmt.Errorf("%w: can't save product: %w", ErrStorage, err)
	}
	return nil
}

// addLog stores processing log. Failures are only logged.
func (e *Enricher) addLog(
	ctx context.Context,
	productID uuid.UUID,
	operation models.OperationType,
	status models.LogStatus,
	message string,
	details map[string]any,
) {
	log := &models.ProcessingLog{
		ID:               uuid.New(),
		ProductID:        &productID,
		OperationType:    operation,
		Status:           status,
		OperationDetails: details,
	}
	if message != "" {
		log.ErrorMessage = &message
	}

	if err := e.storage.AddProcessingLog(ctx, log); err != nil {
		e.logger.Warn().Err(err).
			Str("productId", productID.String()).
			Str("operation", string(operation)).
			Msg("can't add processing log")
	}
}

func mergeMarketplace(product *models.Product, result *marketplace.Result, now time.Time) {
	product.EbayItemID = lo.ToPtr(result.ItemID)
	product.PartNumberTags = lo.Uniq(append(product.PartNumberTags, result.PartNumberTags...))

	data := result.MarketplaceData(now)
	if data == nil {
		return
	}
	product.EbayData = data

	details := data.ItemDetails
	setIfEmpty(&product.ProductName, details.Title)
	if product.Price == nil {
		if price, err := strconv.ParseFloat(strings.TrimSpace(details.Price), 64); err == nil && price > 0 {
			product.Price = &price
		}
	}
	product.Images = mergeImages(product.Images, details.Images)
	product.TechnicalSpecs = product.TechnicalSpecs.Merge(details.ItemSpecifics)
}

func mergeWeb(product *models.Product, result *websearch.Result) {
	setIfEmpty(&product.ProductName, result.ProductName)
	setIfEmpty(&product.Category, result.Category)
	if product.Price == nil {
		product.Price = result.Price
	}
	product.Images = mergeImages(product.Images, result.Images)
	product.TechnicalSpecs = product.TechnicalSpecs.Merge(result.TechnicalSpecs)
	if result.EAN != "" {
		product.TechnicalSpecs = product.TechnicalSpecs.Merge(models.TechnicalSpecs{"EAN": result.EAN})
	}
	product.OEMNumbers = lo.Uniq(append(product.OEMNumbers, result.OEMNumbers...))
}

func mergeCatalog(product *models.Product, result *catalog.Result) {
	product.CatalogURL = lo.ToPtr(result.URL)
	setIfEmpty(&product.ProductName, result.ProductName)
	setIfEmpty(&product.Category, result.Category)
	if product.Price == nil {
		product.Price = result.Price
	}
	product.Images = mergeImages(product.Images, result.Images)
	product.TechnicalSpecs = product.TechnicalSpecs.Merge(result.TechnicalSpecs)
	product.OEMNumbers = lo.Uniq(append(product.OEMNumbers, result.OEMNumbers...))
	if result.Availability != "" {
		product.TechnicalSpecs = product.TechnicalSpecs.Merge(models.TechnicalSpecs{"Availability": result.Availability})
	}
}

func setIfEmpty(field **string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if *field == nil || **field == "" {
		*field = &value
	}
}

func mergeImages(current, found []string) []string {
	images := lo.Uniq(append(lo.Compact(current), lo.Compact(found)...))
	return lo.Slice(images, 0, maxImages)
}
