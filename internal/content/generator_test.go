package content_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/content/mocks"
	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const model = "deepseek-chat"

func TestUnitGenerate(t *testing.T) {
	tests := map[string]struct {
		setup     func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer)
		wantText  string
		wantErr   error
		wantTitle *string
	}{
		"default prompt": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).
					Return(nil, platform.ErrTemplateNotFound)
				completer.On("Complete", mock.Anything, mock.AnythingOfType("string"), 200).
					Return("  Febi Brake Pad Set 12345 \n", nil)
				storage.On("SaveGeneratedContent", mock.Anything, mock.MatchedBy(func(g *models.AIGeneration) bool {
					return g.PromptType == models.SlotTitle &&
						g.GeneratedContent == "Febi Brake Pad Set 12345" &&
						g.ModelUsed == model
				})).Return(nil)
			},
			wantText:  "Febi Brake Pad Set 12345",
			wantTitle: lo.ToPtr("Febi Brake Pad Set 12345"),
		},
		"custom template": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).
					Return(&models.PromptTemplate{Slot: models.SlotTitle, Template: "Title for {brand} {sku}"}, nil)
				completer.On("Complete", mock.Anything, "Title for febi 12345", 200).Return("Custom", nil)
				storage.On("SaveGeneratedContent", mock.Anything, mock.MatchedBy(func(g *models.AIGeneration) bool {
					var input map[string]any
					require.NoError(t, json.Unmarshal([]byte(g.PromptInput), &input))
					return input["prompt"] == "Title for febi 12345" && input["productData"] != nil
				})).Return(nil)
			},
			wantText:  "Custom",
			wantTitle: lo.ToPtr("Custom"),
		},
		"completion error": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).
					Return(nil, platform.ErrTemplateNotFound)
				completer.On("Complete", mock.Anything, mock.Anything, 200).Return("", assert.AnError)
			},
			wantErr: assert.AnError,
		},
		"empty completion": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).
					Return(nil, platform.ErrTemplateNotFound)
				completer.On("Complete", mock.Anything, mock.Anything, 200).Return(" \n ", nil)
			},
			wantErr: content.ErrEmptyContent,
		},
		"template storage error": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).Return(nil, assert.AnError)
			},
			wantErr: content.ErrStorage,
		},
		"save error": {
			setup: func(t *testing.T, storage *mocks.Storage, completer *mocks.Completer) {
				storage.On("GetPromptTemplate", mock.Anything, models.SlotTitle).
					Return(nil, platform.ErrTemplateNotFound)
				completer.On("Complete", mock.Anything, mock.Anything, 200).Return("Title", nil)
				storage.On("SaveGeneratedContent", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			wantErr: content.ErrStorage,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			completer := mocks.NewCompleter(t)
			allowLogs(storage, completer)
			tt.setup(t, storage, completer)

			product := modelstesting.FakeProduct(func(p *models.Product) {
				p.Brand = "febi"
				p.SKU = "12345"
			})

			gen := content.NewGenerator(storage, completer, nopLogger(), nil)
			text, err := gen.Generate(context.TODO(), &product, models.SlotTitle)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantText, text, "should return generated text")
			assert.Equal(t, tt.wantTitle, product.SEOTitle, "should set generated text on product")
		})
	}
}

func TestUnitGenerateUnknownSlot(t *testing.T) {
	gen := content.NewGenerator(mocks.NewStorage(t), mocks.NewCompleter(t), nopLogger(), nil)
	product := modelstesting.FakeProduct()

	_, err := gen.Generate(context.TODO(), &product, models.ContentSlot("keywords"))

	require.ErrorIs(t, err, content.ErrUnknownSlot)
}

func TestUnitGenerateLogs(t *testing.T) {
	storage := mocks.NewStorage(t)
	completer := mocks.NewCompleter(t)
	completer.On("Model").Return(model)
	storage.On("GetPromptTemplate", mock.Anything, models.SlotMetaDescription).Return(nil, platform.ErrTemplateNotFound)
	completer.On("Complete", mock.Anything, mock.Anything, 200).Return("", assert.AnError)

	var statuses []models.LogStatus
	storage.On("AddProcessingLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			log := args.Get(1).(*models.ProcessingLog)
			assert.Equal(t, models.OperationAIGeneration, log.OperationType)
			assert.Equal(t, "meta_description", log.OperationDetails["contentType"])
			statuses = append(statuses, log.Status)
		}).
		Return(assert.AnError)

	m := metrics.NewMetrics()
	gen := content.NewGenerator(storage, completer, nopLogger(), m)
	product := modelstesting.FakeProduct()

	_, err := gen.Generate(context.TODO(), &product, models.SlotMetaDescription)

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []models.LogStatus{models.LogStarted, models.LogError}, statuses,
		"should log started and error, ignoring log failures",
	)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("meta_description", "error")))
}

func TestUnitGenerateAll(t *testing.T) {
	storage := mocks.NewStorage(t)
	completer := mocks.NewCompleter(t)
	allowLogs(storage, completer)
	storage.On("GetPromptTemplate", mock.Anything, mock.Anything).Return(nil, platform.ErrTemplateNotFound)
	storage.On("SaveGeneratedContent", mock.Anything, mock.Anything).Return(nil)

	var prompts []string
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ context.Context, prompt string, maxTokens int) (string, error) {
			prompts = append(prompts, prompt)
			switch {
			case maxTokens == 800:
				return "", assert.AnError
			case strings.HasPrefix(prompt, "Write a short"):
				return "Short copy.", nil
			default:
				return "Generated", nil
			}
		})

	gen := content.NewGenerator(storage, completer, nopLogger(), nil)
	product := modelstesting.FakeProduct()

	outcome, err := gen.GenerateAll(context.TODO(), &product)

	require.NoError(t, err)
	require.Len(t, prompts, 4, "should try every slot")
	assert.False(t, outcome.Complete())
	assert.Len(t, outcome.Texts, 3)
	assert.ErrorIs(t, outcome.Errors[models.SlotLongDescription], assert.AnError)
	assert.ErrorIs(t, outcome.Err(), assert.AnError)
	assert.Contains(t, prompts[3], "Short Description: Short copy.", "later prompts should use earlier results")
	assert.Equal(t, lo.ToPtr("Short copy."), product.ShortDescription)
	assert.Nil(t, product.LongDescription)
}

func TestUnitGenerateAllStopsOnStorageError(t *testing.T) {
	storage := mocks.NewStorage(t)
	completer := mocks.NewCompleter(t)
	allowLogs(storage, completer)
	storage.On("GetPromptTemplate", mock.Anything, mock.Anything).Return(nil, platform.ErrTemplateNotFound)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Generated", nil).Once()
	storage.On("SaveGeneratedContent", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	gen := content.NewGenerator(storage, completer, nopLogger(), nil)
	product := modelstesting.FakeProduct()

	outcome, err := gen.GenerateAll(context.TODO(), &product)

	require.ErrorIs(t, err, content.ErrStorage)
	assert.Empty(t, outcome.Texts)
}

func TestUnitGenerateForProduct(t *testing.T) {
	tests := map[string]struct {
		product    models.Product
		slot       models.ContentSlot
		complete   error
		wantStatus models.AIContentStatus
		setStatus  *models.AIContentStatus
		wantErr    error
	}{
		"last slot generated": {
			product: modelstesting.FakeEnrichedProduct(func(p *models.Product) {
				p.AIContentStatus = models.AIContentFailed
				p.MetaDescription = nil
			}),
			slot:       models.SlotMetaDescription,
			wantStatus: models.AIContentGenerated,
			setStatus:  lo.ToPtr(models.AIContentGenerated),
		},
		"missing slots left": {
			product:    modelstesting.FakeProduct(),
			slot:       models.SlotTitle,
			wantStatus: models.AIContentPending,
		},
		"completion failure": {
			product:    modelstesting.FakeProduct(),
			slot:       models.SlotTitle,
			complete:   assert.AnError,
			wantStatus: models.AIContentFailed,
			setStatus:  lo.ToPtr(models.AIContentFailed),
			wantErr:    assert.AnError,
		},
		"completion failure keeps generated": {
			product:    modelstesting.FakeEnrichedProduct(),
			slot:       models.SlotTitle,
			complete:   assert.AnError,
			wantStatus: models.AIContentGenerated,
			wantErr:    assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			completer := mocks.NewCompleter(t)
			allowLogs(storage, completer)

			product := tt.product
			storage.On("GetProduct", mock.Anything, product.ID).Return(&product, nil)
			storage.On("GetPromptTemplate", mock.Anything, tt.slot).Return(nil, platform.ErrTemplateNotFound)
			if tt.complete != nil {
				completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", tt.complete)
			} else {
				completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Generated", nil)
				storage.On("SaveGeneratedContent", mock.Anything, mock.Anything).Return(nil)
			}
			if tt.setStatus != nil {
				storage.On("SetContentStatus", mock.Anything, product.ID, *tt.setStatus).Return(nil)
			}

			gen := content.NewGenerator(storage, completer, nopLogger(), nil)
			_, got, err := gen.GenerateForProduct(context.TODO(), product.ID, tt.slot)

			require.ErrorIs(t, err, tt.wantErr)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.AIContentStatus, "should set correct content status")
		})
	}
}

func TestUnitGenerateForProductNotFound(t *testing.T) {
	storage := mocks.NewStorage(t)
	id := uuid.New()
	storage.On("GetProduct", mock.Anything, id).Return(nil, platform.ErrProductNotFound)

	gen := content.NewGenerator(storage, mocks.NewCompleter(t), nopLogger(), nil)
	_, _, err := gen.GenerateForProduct(context.TODO(), id, models.SlotTitle)

	require.ErrorIs(t, err, platform.ErrProductNotFound)
}

func allowLogs(storage *mocks.Storage, completer *mocks.Completer) {
	storage.On("AddProcessingLog", mock.Anything, mock.Anything).Return(nil).Maybe()
	completer.On("Model").Return(model).Maybe()
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
