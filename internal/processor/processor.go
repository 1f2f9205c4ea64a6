package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/enricher"
	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Enricher --filename enricher.go
//go:generate mockery --name Generator --filename generator.go

const (
	DefaultGroupSize  = 3
	DefaultGroupDelay = time.Second

	// DefaultDeadline leaves time to finish batch before 5 minutes invocation limit.
	DefaultDeadline = 5*time.Minute - 30*time.Second
)

// Storage is batches and products storage.
type Storage interface {
	GetBatch(ctx context.Context, batchID uuid.UUID) (*models.Batch, error)
	// GetPendingProducts returns batch products with pending scraping status in CSV order.
	GetPendingProducts(ctx context.Context, batchID uuid.UUID) ([]models.Product, error)
	UpdateBatchStatus(ctx context.Context, batchID uuid.UUID, status models.BatchStatus) error
	// RefreshBatchCounters recomputes batch counters from its products in single transaction.
	RefreshBatchCounters(ctx context.Context, batchID uuid.UUID) (*models.Batch, error)
	FinishBatch(
		ctx context.Context,
		batchID uuid.UUID,
		status models.BatchStatus,
		errorDetails *string,
	) (*models.Batch, error)
	SetProductStatus(
		ctx context.Context,
		productID uuid.UUID,
		scraping models.ScrapingStatus,
		content models.AIContentStatus,
	) error
	AddProcessingLog(ctx context.Context, log *models.ProcessingLog) error
}

// Enricher runs enrichment sources for product.
type Enricher interface {
	EnrichFromMarketplace(
		ctx context.Context,
		product *models.Product,
		query marketplace.Query,
	) (*marketplace.Result, error)
	EnrichFromWeb(ctx context.Context, product *models.Product) (*websearch.Result, error)
	EnrichFromCatalog(ctx context.Context, product *models.Product) (*catalog.Result, error)
}

// Generator generates product content.
type Generator interface {
	GenerateAll(ctx context.Context, product *models.Product) (*content.Outcome, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Processor.
type Option func(p *Processor)

// Summary describes single batch processing run.
type Summary struct {
	Batch        *models.Batch
	Attempted    int
	Succeeded    int
	Failed       int
	Remaining    int
	StoppedEarly bool
}

// Processor runs enrichment pipeline for batch products in small concurrent groups.
type Processor struct {
	storage    Storage
	enricher   Enricher
	generator  Generator
	logger     *zerolog.Logger
	metrics    *metrics.Metrics
	clock      Clock
	groupSize  int
	groupDelay time.Duration
	deadline   time.Duration
}

// NewProcessor returns new Processor.
func NewProcessor(storage Storage, enr Enricher, gen Generator, logger *zerolog.Logger, ops ...Option) *Processor {
	pro := &Processor{
		storage:    storage,
		enricher:   enr,
		generator:  gen,
		logger:     logger,
		clock:      systemClock{},
		groupSize:  DefaultGroupSize,
		groupDelay: DefaultGroupDelay,
		deadline:   DefaultDeadline,
	}

	for _, op := range ops {
		op(pro)
	}

	return pro
}

type rowResult struct {
	succeeded bool
	err       error
}

// ProcessBatch processes pending batch products. Groups run one after another
// and products within a group run concurrently. Processing stops early when deadline passes
// or ctx is done, products left are still pending and can be processed by next run.
// Canceling ctx never interrupts started group and never fails the batch.
func (p *Processor) ProcessBatch(ctx context.Context, batchID uuid.UUID) (*Summary, error) {
	interrupt := ctx
	ctx = context.WithoutCancel(ctx)
	start := p.clock.Now()
	logger := p.logger.With().Str("batchId", batchID.String()).Logger()

	batch, err := p.storage.GetBatch(ctx, batchID)
	if errors.Is(err, platform.ErrBatchNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, p.failBatch(ctx, batchID, fmt.Errorf("can't get batch: %w", err))
	}

	products, err := p.storage.GetPendingProducts(ctx, batchID)
	if err != nil {
		return nil, p.failBatch(ctx, batchID, fmt.Errorf("can't get pending products: %w", err))
	}

	if len(products) == 0 {
		return p.finishEmpty(ctx, batch)
	}

	if err := p.storage.UpdateBatchStatus(ctx, batchID, models.BatchProcessing); err != nil {
		return nil, fmt.Errorf("can't start batch processing: %w", err)
	}
	p.addLog(ctx, batchID, models.LogStarted, "", map[string]any{"pendingItems": len(products)})
	logger.Info().Int("pending", len(products)).Msg("batch processing started")

	summary := &Summary{}
	var rowErrors []string

	for ix, group := range lo.Chunk(products, p.groupSize) {
		if ix > 0 {
			if err := p.wait(interrupt); err != nil {
				logger.Warn().Err(err).Msg("batch processing interrupted")
				summary.StoppedEarly = true
				break
			}
			if p.clock.Now().Sub(start) >= p.deadline {
				summary.StoppedEarly = true
				break
			}
		}

		for jx, result := range p.processGroup(ctx, group) {
			summary.Attempted++
			if result.succeeded {
				summary.Succeeded++
			} else {
				summary.Failed++
			}
			if result.err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("%s %s: %s", group[jx].Brand, group[jx].SKU, result.err))
			}
		}

		if _, err := p.storage.RefreshBatchCounters(ctx, batchID); err != nil {
			logger.Warn().Err(err).Msg("can't refresh batch counters")
		}
	}
	summary.Remaining = len(products) - summary.Attempted

	var errorDetails *string
	if len(rowErrors) > 0 {
		errorDetails = lo.ToPtr(strings.Join(rowErrors, "\n"))
	}

	finished, err := p.storage.FinishBatch(ctx, batchID, models.BatchCompleted, errorDetails)
	if err != nil {
		return summary, fmt.Errorf("can't finish batch processing: %w", err)
	}
	summary.Batch = finished

	p.metrics.IncBatch(string(models.BatchCompleted))
	p.addLog(ctx, batchID, models.LogSuccess, "", map[string]any{
		"attempted":    summary.Attempted,
		"succeeded":    summary.Succeeded,
		"failed":       summary.Failed,
		"remaining":    summary.Remaining,
		"stoppedEarly": summary.StoppedEarly,
	})
	logger.Info().
		Int("attempted", summary.Attempted).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int("remaining", summary.Remaining).
		Bool("stoppedEarly", summary.StoppedEarly).
		Dur("took", p.clock.Now().Sub(start)).
		Msg("batch processing finished")

	return summary, nil
}

// RestartBatch moves batch back to pending and processes its pending products again.
func (p *Processor) RestartBatch(ctx context.Context, batchID uuid.UUID) (*Summary, error) {
	batch, err := p.storage.GetBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("can't get batch: %w", err)
	}

	if batch.Status != models.BatchPending {
		if err := p.storage.UpdateBatchStatus(ctx, batchID, models.BatchPending); err != nil {
			return nil, fmt.Errorf("can't restart batch: %w", err)
		}
	}

	return p.ProcessBatch(ctx, batchID)
}

// finishEmpty completes batch without pending products leaving its counters untouched.
func (p *Processor) finishEmpty(ctx context.Context, batch *models.Batch) (*Summary, error) {
	if batch.Status != models.BatchCompleted && batch.Status.CanTransitionTo(models.BatchCompleted) {
		if err := p.storage.UpdateBatchStatus(ctx, batch.ID, models.BatchCompleted); err != nil {
			return nil, fmt.Errorf("can't complete batch: %w", err)
		}
		batch.Status = models.BatchCompleted
	}

	return &Summary{Batch: batch}, nil
}

// processGroup processes every group product. Failure of one product doesn't affect others.
func (p *Processor) processGroup(ctx context.Context, group []models.Product) []rowResult {
	results := make([]rowResult, len(group))

	var eg errgroup.Group
	for ix := range group {
		product := &group[ix]
		eg.Go(func() error {
			results[ix] = p.processProduct(ctx, product)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// processProduct runs pipeline stages for single product and sets its final statuses.
// Only database failures make product failed, missing data and upstream errors don't.
func (p *Processor) processProduct(ctx context.Context, product *models.Product) rowResult {
	logger := p.logger.With().Str("productId", product.ID.String()).Str("sku", product.SKU).Logger()

	market, err := p.enricher.EnrichFromMarketplace(ctx, product, enricher.QueryFor(product))
	if err != nil {
		return p.failProduct(ctx, product, fmt.Errorf("can't enrich from marketplace: %w", err))
	}

	web, err := p.enricher.EnrichFromWeb(ctx, product)
	switch {
	case errors.Is(err, enricher.ErrStorage):
		return p.failProduct(ctx, product, fmt.Errorf("can't enrich from web: %w", err))
	case err != nil:
		logger.Debug().Err(err).Msg("web search skipped")
	default:
		logger.Debug().Int("items", len(web.Items)).Msg("web search merged")
	}

	if !market.Found() {
		_, err := p.enricher.EnrichFromCatalog(ctx, product)
		switch {
		case errors.Is(err, enricher.ErrStorage):
			return p.failProduct(ctx, product, fmt.Errorf("can't enrich from catalog: %w", err))
		case err != nil && !errors.Is(err, enricher.ErrCatalogDisabled):
			logger.Debug().Err(err).Msg("catalog scraping skipped")
		}
	}

	outcome, err := p.generator.GenerateAll(ctx, product)
	if err != nil {
		return p.failProduct(ctx, product, fmt.Errorf("can't generate content: %w", err))
	}

	// Web and catalog data only supplement the product, marketplace match alone makes it scraped.
	scraping := lo.Ternary(market.Found(), models.ScrapingScraped, models.ScrapingNoResults)
	aiContent := lo.Ternary(outcome.Complete(), models.AIContentGenerated, models.AIContentFailed)

	if err := p.storage.SetProductStatus(ctx, product.ID, scraping, aiContent); err != nil {
		return p.failProduct(ctx, product, fmt.Errorf("can't set product status: %w", err))
	}
	product.ScrapingStatus = scraping
	product.AIContentStatus = aiContent
	p.metrics.IncProduct(string(scraping))

	if !outcome.Complete() {
		return rowResult{err: outcome.Err()}
	}

	return rowResult{succeeded: true}
}

// failProduct marks product failed. Status update failure is only logged.
func (p *Processor) failProduct(ctx context.Context, product *models.Product, cause error) rowResult {
	p.metrics.IncProduct(string(models.ScrapingFailed))

	err := p.storage.SetProductStatus(ctx, product.ID, models.ScrapingFailed, models.AIContentFailed)
	if err != nil {
		p.logger.Error().Err(err).Str("productId", product.ID.String()).Msg("can't mark product failed")
	} else {
		product.ScrapingStatus = models.ScrapingFailed
		product.AIContentStatus = models.AIContentFailed
	}

	return rowResult{err: cause}
}

// failBatch marks batch failed and returns cause.
func (p *Processor) failBatch(ctx context.Context, batchID uuid.UUID, cause error) error {
	p.metrics.IncBatch(string(models.BatchFailed))
	p.addLog(ctx, batchID, models.LogFailed, cause.Error(), nil)

	_, err := p.storage.FinishBatch(ctx, batchID, models.BatchFailed, lo.ToPtr(cause.Error()))
	if err != nil {
		return fmt.Errorf("can't finish failed processing: %w (fail reason: %w)", err, cause)
	}

	return cause
}

func (p *Processor) wait(ctx context.Context) error {
	if p.groupDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.groupDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// addLog stores batch processing log. Failures are only logged.
func (p *Processor) addLog(
	ctx context.Context,
	batchID uuid.UUID,
	status models.LogStatus,
	message string,
	details map[string]any,
) {
	log := &models.ProcessingLog{
		ID:               uuid.New(),
		BatchID:          &batchID,
		OperationType:    models.OperationBatchProcessing,
		Status:           status,
		OperationDetails: details,
	}
	if message != "" {
		log.ErrorMessage = &message
	}

	if err := p.storage.AddProcessingLog(ctx, log); err != nil {
		p.logger.Warn().Err(err).Str("batchId", batchID.String()).Msg("can't add processing log")
	}
}

// WithClock sets Processor's custom Clock.
func WithClock(c Clock) Option {
	return func(p *Processor) {
		p.clock = c
	}
}

// WithGroupSize sets number of products processed concurrently.
func WithGroupSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.groupSize = size
		}
	}
}

// WithGroupDelay sets pause between groups.
func WithGroupDelay(delay time.Duration) Option {
	return func(p *Processor) {
		p.groupDelay = delay
	}
}

// WithDeadline sets time after which no new group is started.
func WithDeadline(deadline time.Duration) Option {
	return func(p *Processor) {
		p.deadline = deadline
	}
}

// WithMetrics sets Processor's metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}
