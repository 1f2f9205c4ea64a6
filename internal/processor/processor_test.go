package processor_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/enricher"
	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/parts-enricher/internal/processor"
	"github.com/MichalMitros/parts-enricher/internal/processor/mocks"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	start    = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	found    = &marketplace.Result{Strategy: marketplace.StrategyBrandSKU, Listings: []models.Listing{{ItemID: "1"}}}
	notFound = &marketplace.Result{}
	scraped  = &catalog.Result{Images: []string{"https://cdn.autodoc.de/1.jpg"}}
	complete = &content.Outcome{
		Texts: map[models.ContentSlot]string{
			models.SlotTitle:            "title",
			models.SlotShortDescription: "short",
			models.SlotLongDescription:  "long",
			models.SlotMetaDescription:  "meta",
		},
		Errors: map[models.ContentSlot]error{},
	}
	partial = &content.Outcome{
		Texts: map[models.ContentSlot]string{
			models.SlotTitle:            "title",
			models.SlotShortDescription: "short",
			models.SlotMetaDescription:  "meta",
		},
		Errors: map[models.ContentSlot]error{models.SlotLongDescription: assert.AnError},
	}
)

func TestUnitProcessBatch(t *testing.T) {
	batch := modelstesting.FakeBatch(func(b *models.Batch) { b.TotalItems = 4 })
	products := fakeProducts(batch.ID, 4)
	finished := batch
	finished.Status = models.BatchCompleted

	storage := mocks.NewStorage(t)
	enr := mocks.NewEnricher(t)
	gen := mocks.NewGenerator(t)

	mockStorageLoad(storage, &batch, products, nil)
	allowLogs(storage)
	storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchProcessing).Return(nil).Once()
	storage.On("RefreshBatchCounters", mock.Anything, batch.ID).Return(&batch, nil).Twice()

	// found on marketplace, all content generated
	mockMarketplace(enr, products[0], found, nil)
	mockWeb(enr, products[0], nil, websearch.ErrNoResults)
	mockGenerator(gen, products[0], complete, nil)
	mockStatus(storage, products[0], models.ScrapingScraped, models.AIContentGenerated)

	// found on web only, one slot failed
	mockMarketplace(enr, products[1], notFound, nil)
	mockWeb(enr, products[1], &websearch.Result{Items: []websearch.Item{{Link: "https://example.com"}}}, nil)
	mockCatalog(enr, products[1], enricher.ErrCatalogDisabled)
	mockGenerator(gen, products[1], partial, nil)
	mockStatus(storage, products[1], models.ScrapingNoResults, models.AIContentFailed)

	// nothing found anywhere, catalog disabled
	mockMarketplace(enr, products[2], notFound, nil)
	mockWeb(enr, products[2], nil, websearch.ErrNoResults)
	mockCatalog(enr, products[2], enricher.ErrCatalogDisabled)
	mockGenerator(gen, products[2], complete, nil)
	mockStatus(storage, products[2], models.ScrapingNoResults, models.AIContentGenerated)

	// database failure
	mockMarketplace(enr, products[3], notFound, fmt.Errorf("%w: can't save product", enricher.ErrStorage))
	mockStatus(storage, products[3], models.ScrapingFailed, models.AIContentFailed)

	storage.On("FinishBatch", mock.Anything, batch.ID, models.BatchCompleted, mock.MatchedBy(func(details *string) bool {
		return details != nil &&
			strings.Contains(*details, products[1].SKU+": "+assert.AnError.Error()) &&
			strings.Contains(*details, products[3].SKU+": can't enrich from marketplace")
	})).Return(&finished, nil).Once()

	m := metrics.NewMetrics()
	pro := processor.NewProcessor(storage, enr, gen, nopLogger(),
		processor.WithGroupDelay(0),
		processor.WithMetrics(m),
		processor.WithClock(&fakeClock{times: []time.Time{start}}),
	)

	summary, err := pro.ProcessBatch(context.TODO(), batch.ID)

	require.NoError(t, err, "row failures shouldn't fail the batch")
	assert.Equal(t, &processor.Summary{
		Batch:     &finished,
		Attempted: 4,
		Succeeded: 2,
		Failed:    2,
	}, summary)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsProcessedTotal.WithLabelValues("scraped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProductsProcessedTotal.WithLabelValues("no_results")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProductsProcessedTotal.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchesFinishedTotal.WithLabelValues("completed")))
}

func TestUnitProcessBatchScrapingStatus(t *testing.T) {
	webHits := &websearch.Result{Items: []websearch.Item{{Link: "https://example.com"}}}

	tests := map[string]struct {
		market       *marketplace.Result
		web          *websearch.Result
		webErr       error
		catalogErr   error
		catalogCalls bool
		want         models.ScrapingStatus
	}{
		"marketplace empty, web has hits": {
			market:       notFound,
			web:          webHits,
			catalogErr:   enricher.ErrCatalogDisabled,
			catalogCalls: true,
			want:         models.ScrapingNoResults,
		},
		"marketplace empty, catalog has data": {
			market:       notFound,
			webErr:       assert.AnError,
			catalogCalls: true,
			want:         models.ScrapingNoResults,
		},
		"marketplace empty, web and catalog have data": {
			market:       notFound,
			web:          webHits,
			catalogCalls: true,
			want:         models.ScrapingNoResults,
		},
		"marketplace found, web empty": {
			market: found,
			webErr: websearch.ErrNoResults,
			want:   models.ScrapingScraped,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			batch := modelstesting.FakeBatch()
			products := fakeProducts(batch.ID, 1)

			storage := mocks.NewStorage(t)
			enr := mocks.NewEnricher(t)
			gen := mocks.NewGenerator(t)

			mockStorageLoad(storage, &batch, products, nil)
			allowLogs(storage)
			storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchProcessing).Return(nil)
			storage.On("RefreshBatchCounters", mock.Anything, batch.ID).Return(&batch, nil)
			storage.On("FinishBatch", mock.Anything, batch.ID, models.BatchCompleted, (*string)(nil)).Return(&batch, nil)

			mockMarketplace(enr, products[0], tt.market, nil)
			mockWeb(enr, products[0], tt.web, tt.webErr)
			if tt.catalogCalls {
				mockCatalog(enr, products[0], tt.catalogErr)
			}
			mockGenerator(gen, products[0], complete, nil)
			mockStatus(storage, products[0], tt.want, models.AIContentGenerated)

			pro := processor.NewProcessor(storage, enr, gen, nopLogger(), processor.WithGroupDelay(0))

			summary, err := pro.ProcessBatch(context.TODO(), batch.ID)

			require.NoError(t, err)
			assert.Equal(t, 1, summary.Succeeded)
		})
	}
}

func TestUnitProcessBatchNoPendingProducts(t *testing.T) {
	tests := map[string]struct {
		status     models.BatchStatus
		wantUpdate bool
	}{
		"pending batch is completed": {
			status:     models.BatchPending,
			wantUpdate: true,
		},
		"completed batch is untouched": {
			status: models.BatchCompleted,
		},
		"failed batch is untouched": {
			status: models.BatchFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			batch := modelstesting.FakeBatch(func(b *models.Batch) { b.Status = tt.status })
			storage := mocks.NewStorage(t)

			mockStorageLoad(storage, &batch, []models.Product{}, nil)
			if tt.wantUpdate {
				storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchCompleted).Return(nil).Once()
			}

			pro := processor.NewProcessor(storage, mocks.NewEnricher(t), mocks.NewGenerator(t), nopLogger())

			summary, err := pro.ProcessBatch(context.TODO(), batch.ID)

			require.NoError(t, err)
			assert.Zero(t, summary.Attempted, "shouldn't process any product")
			assert.Equal(t, batch.ID, summary.Batch.ID)
		})
	}
}

func TestUnitProcessBatchLoadError(t *testing.T) {
	batch := modelstesting.FakeBatch()
	finishErrMsg := fmt.Sprintf(
		"can't finish failed processing: %s (fail reason: can't get pending products: %s)",
		platform.ErrInvalidTransition,
		assert.AnError,
	)

	tests := map[string]struct {
		batchErr    error
		productsErr error
		finishErr   error
		wantFinish  bool
		wantErr     error
		wantMsg     string
	}{
		"batch not found": {
			batchErr: platform.ErrBatchNotFound,
			wantErr:  platform.ErrBatchNotFound,
			wantMsg:  platform.ErrBatchNotFound.Error(),
		},
		"batch error": {
			batchErr:   assert.AnError,
			wantFinish: true,
			wantErr:    assert.AnError,
			wantMsg:    "can't get batch: " + assert.AnError.Error(),
		},
		"products error": {
			productsErr: assert.AnError,
			wantFinish:  true,
			wantErr:     assert.AnError,
			wantMsg:     "can't get pending products: " + assert.AnError.Error(),
		},
		"finish error": {
			productsErr: assert.AnError,
			finishErr:   platform.ErrInvalidTransition,
			wantFinish:  true,
			wantErr:     platform.ErrInvalidTransition,
			wantMsg:     finishErrMsg,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			allowLogs(storage)

			if tt.batchErr != nil {
				storage.On("GetBatch", mock.Anything, batch.ID).Return(nil, tt.batchErr).Once()
			} else {
				mockStorageLoad(storage, &batch, nil, tt.productsErr)
			}
			if tt.wantFinish {
				storage.On("FinishBatch", mock.Anything, batch.ID, models.BatchFailed, mock.MatchedBy(func(details *string) bool {
					return details != nil && strings.Contains(*details, assert.AnError.Error())
				})).Return(nil, tt.finishErr).Once()
			}

			pro := processor.NewProcessor(storage, mocks.NewEnricher(t), mocks.NewGenerator(t), nopLogger())

			summary, err := pro.ProcessBatch(context.TODO(), batch.ID)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			require.EqualError(t, err, tt.wantMsg, "should return correct error message")
			assert.Nil(t, summary)
		})
	}
}

func TestUnitProcessBatchStartError(t *testing.T) {
	batch := modelstesting.FakeBatch(func(b *models.Batch) { b.Status = models.BatchProcessing })
	storage := mocks.NewStorage(t)

	mockStorageLoad(storage, &batch, fakeProducts(batch.ID, 2), nil)
	storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchProcessing).
		Return(platform.ErrInvalidTransition).Once()

	pro := processor.NewProcessor(storage, mocks.NewEnricher(t), mocks.NewGenerator(t), nopLogger())

	_, err := pro.ProcessBatch(context.TODO(), batch.ID)

	require.ErrorIs(t, err, platform.ErrInvalidTransition, "shouldn't process batch which is already processing")
}

func TestUnitProcessBatchDeadline(t *testing.T) {
	batch := modelstesting.FakeBatch()
	products := fakeProducts(batch.ID, 7)

	storage := mocks.NewStorage(t)
	enr := mocks.NewEnricher(t)
	gen := mocks.NewGenerator(t)

	mockStorageLoad(storage, &batch, products, nil)
	allowLogs(storage)
	storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchProcessing).Return(nil)
	storage.On("RefreshBatchCounters", mock.Anything, batch.ID).Return(&batch, nil).Twice()
	storage.On("FinishBatch", mock.Anything, batch.ID, models.BatchCompleted, (*string)(nil)).Return(&batch, nil).Once()

	// only first two groups are processed
	for _, product := range products[:6] {
		mockMarketplace(enr, product, found, nil)
		mockWeb(enr, product, nil, websearch.ErrNoResults)
		mockGenerator(gen, product, complete, nil)
		mockStatus(storage, product, models.ScrapingScraped, models.AIContentGenerated)
	}

	clock := &fakeClock{times: []time.Time{
		start,
		start.Add(time.Minute),
		start.Add(processor.DefaultDeadline),
	}}
	pro := processor.NewProcessor(storage, enr, gen, nopLogger(),
		processor.WithGroupDelay(time.Millisecond),
		processor.WithGroupSize(3),
		processor.WithClock(clock),
	)

	summary, err := pro.ProcessBatch(context.TODO(), batch.ID)

	require.NoError(t, err)
	assert.True(t, summary.StoppedEarly, "should stop after deadline")
	assert.Equal(t, 6, summary.Attempted)
	assert.Equal(t, 1, summary.Remaining, "last product should stay pending")
}

func TestUnitProcessBatchCanceled(t *testing.T) {
	batch := modelstesting.FakeBatch()
	products := fakeProducts(batch.ID, 2)
	finished := batch
	finished.Status = models.BatchCompleted
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	storage := mocks.NewStorage(t)
	enr := mocks.NewEnricher(t)
	gen := mocks.NewGenerator(t)
	active := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })

	mockStorageLoad(storage, &batch, products, nil)
	allowLogs(storage)
	storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchProcessing).Return(nil)
	storage.On("RefreshBatchCounters", active, batch.ID).Return(&batch, nil).Once()
	storage.On("FinishBatch", active, batch.ID, models.BatchCompleted, (*string)(nil)).Return(&finished, nil).Once()

	mockMarketplace(enr, products[0], found, nil)
	mockWeb(enr, products[0], nil, websearch.ErrNoResults)
	gen.On("GenerateAll", mock.Anything, matchProduct(products[0])).
		Run(func(_ mock.Arguments) { cancel() }).
		Return(complete, nil).Once()
	storage.On("SetProductStatus", active, products[0].ID, models.ScrapingScraped, models.AIContentGenerated).
		Return(nil).Once()

	pro := processor.NewProcessor(storage, enr, gen, nopLogger(),
		processor.WithGroupSize(1),
		processor.WithGroupDelay(time.Hour),
	)

	summary, err := pro.ProcessBatch(ctx, batch.ID)

	require.NoError(t, err, "canceling shouldn't fail the batch")
	assert.Equal(t, &processor.Summary{
		Batch:        &finished,
		Attempted:    1,
		Succeeded:    1,
		Remaining:    1,
		StoppedEarly: true,
	}, summary)
}

func TestUnitRestartBatch(t *testing.T) {
	batch := modelstesting.FakeBatch(func(b *models.Batch) {
		b.Status = models.BatchCompleted
		b.ProcessedItems = b.TotalItems
		b.SuccessfulItems = b.TotalItems
	})

	storage := mocks.NewStorage(t)
	pro := processor.NewProcessor(storage, mocks.NewEnricher(t), mocks.NewGenerator(t), nopLogger())

	// restarting twice gives the same result
	for range 2 {
		pending := batch
		pending.Status = models.BatchPending

		storage.On("GetBatch", mock.Anything, batch.ID).Return(&batch, nil).Once()
		storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchPending).Return(nil).Once()
		storage.On("GetBatch", mock.Anything, batch.ID).Return(&pending, nil).Once()
		storage.On("GetPendingProducts", mock.Anything, batch.ID).Return([]models.Product{}, nil).Once()
		storage.On("UpdateBatchStatus", mock.Anything, batch.ID, models.BatchCompleted).Return(nil).Once()

		summary, err := pro.RestartBatch(context.TODO(), batch.ID)

		require.NoError(t, err)
		assert.Equal(t, models.BatchCompleted, summary.Batch.Status)
		assert.Equal(t, batch.SuccessfulItems, summary.Batch.SuccessfulItems, "should keep counters")
		assert.Zero(t, summary.Attempted)
	}
}

func TestUnitRestartBatchNotFound(t *testing.T) {
	storage := mocks.NewStorage(t)
	id := uuid.New()
	storage.On("GetBatch", mock.Anything, id).Return(nil, platform.ErrBatchNotFound)

	pro := processor.NewProcessor(storage, mocks.NewEnricher(t), mocks.NewGenerator(t), nopLogger())

	_, err := pro.RestartBatch(context.TODO(), id)

	require.ErrorIs(t, err, platform.ErrBatchNotFound)
}

func fakeProducts(batchID uuid.UUID, n int) []models.Product {
	return lo.Times(n, func(ix int) models.Product {
		return modelstesting.FakeProduct(func(p *models.Product) {
			p.BatchID = batchID
			p.LineNumber = int32(ix + 2)
		})
	})
}

func matchProduct(product models.Product) any {
	return mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == product.ID
	})
}

func mockStorageLoad(storage *mocks.Storage, batch *models.Batch, products []models.Product, err error) {
	storage.On("GetBatch", mock.Anything, batch.ID).Return(batch, nil).Once()
	storage.On("GetPendingProducts", mock.Anything, batch.ID).Return(products, err).Once()
}

func mockStatus(
	storage *mocks.Storage,
	product models.Product,
	scraping models.ScrapingStatus,
	aiContent models.AIContentStatus,
) {
	storage.On("SetProductStatus", mock.Anything, product.ID, scraping, aiContent).Return(nil).Once()
}

func mockMarketplace(enr *mocks.Enricher, product models.Product, result *marketplace.Result, err error) {
	enr.On("EnrichFromMarketplace", mock.Anything, matchProduct(product), marketplace.Query{
		Brand:    product.Brand,
		SKU:      product.SKU,
		OENumber: product.OENumber,
	}).Return(result, err).Once()
}

func mockWeb(enr *mocks.Enricher, product models.Product, result *websearch.Result, err error) {
	enr.On("EnrichFromWeb", mock.Anything, matchProduct(product)).Return(result, err).Once()
}

func mockCatalog(enr *mocks.Enricher, product models.Product, err error) {
	if err != nil {
		enr.On("EnrichFromCatalog", mock.Anything, matchProduct(product)).Return(nil, err).Once()
		return
	}
	enr.On("EnrichFromCatalog", mock.Anything, matchProduct(product)).
		Return(scraped, nil).Once()
}

func mockGenerator(gen *mocks.Generator, product models.Product, outcome *content.Outcome, err error) {
	gen.On("GenerateAll", mock.Anything, matchProduct(product)).Return(outcome, err).Once()
}

func allowLogs(storage *mocks.Storage) {
	storage.On("AddProcessingLog", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeClock struct {
	times []time.Time
	calls int
}

// Now returns next configured time, the last one is repeated.
func (c *fakeClock) Now() time.Time {
	now := c.times[min(c.calls, len(c.times)-1)]
	c.calls++
	return now
}
