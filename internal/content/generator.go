package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Completer --filename completer.go

var (
	// ErrUnknownSlot is returned for content slot other than title, short_description,
	// long_description and meta_description.
	ErrUnknownSlot = errors.New("unknown content slot")
	// ErrEmptyContent is returned when model returned only whitespace.
	ErrEmptyContent = errors.New("generated content is empty")
	// ErrStorage wraps database failures. Generation can't continue after it.
	ErrStorage = errors.New("storage failure")
)

// Storage stores generated content.
type Storage interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	// GetPromptTemplate returns custom template or platform.ErrTemplateNotFound.
	GetPromptTemplate(ctx context.Context, slot models.ContentSlot) (*models.PromptTemplate, error)
	// SaveGeneratedContent appends generation record and writes its text into product.
	SaveGeneratedContent(ctx context.Context, generation *models.AIGeneration) error
	SetContentStatus(ctx context.Context, productID uuid.UUID, status models.AIContentStatus) error
	AddProcessingLog(ctx context.Context, log *models.ProcessingLog) error
}

// Completer generates text for prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
	Model() string
}

// Outcome is result of generating all content slots for product.
type Outcome struct {
	Texts  map[models.ContentSlot]string
	Errors map[models.ContentSlot]error
}

// Complete returns true when every slot was generated.
func (o *Outcome) Complete() bool {
	return len(o.Errors) == 0 && len(o.Texts) == len(models.ContentSlots())
}

// Err joins slot errors.
func (o *Outcome) Err() error {
	errs := make([]error, 0, len(o.Errors))
	for _, slot := range models.ContentSlots() {
		if err, ok := o.Errors[slot]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Generator writes product copy using LLM completions.
type Generator struct {
	storage   Storage
	completer Completer
	logger    *zerolog.Logger
	metrics   *metrics.Metrics
}

// NewGenerator returns new Generator. Metrics can be nil.
func NewGenerator(storage Storage, completer Completer, logger *zerolog.Logger, m *metrics.Metrics) *Generator {
	return &Generator{
		storage:   storage,
		completer: completer,
		logger:    logger,
		metrics:   m,
	}
}

type promptInput struct {
	Prompt      string      `json:"prompt"`
	ProductData productData `json:"productData"`
}

type productData struct {
	Brand          string                `json:"brand"`
	SKU            string                `json:"sku"`
	OENumber       string                `json:"oeNumber"`
	ProductName    string                `json:"productName,omitempty"`
	Category       string                `json:"category,omitempty"`
	Price          *float64              `json:"price,omitempty"`
	OEMNumbers     []string              `json:"oemNumbers,omitempty"`
	TechnicalSpecs models.TechnicalSpecs `json:"technicalSpecs,omitempty"`
	HasEbayData    bool                  `json:"hasEbayData"`
}

// Generate generates text for single slot, stores it with generation record and sets it on product.
// Completion failures affect only this slot. Database failures are wrapped with ErrStorage.
func (g *Generator) Generate(ctx context.Context, product *models.Product, slot models.ContentSlot) (string, error) {
	if !slot.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}

	custom := ""
	template, err := g.storage.GetPromptTemplate(ctx, slot)
	switch {
	case err == nil:
		custom = template.Template
	case !errors.Is(err, platform.ErrTemplateNotFound):
		return "", fmt.Errorf("%w: can't get %s prompt template: %w", ErrStorage, slot, err)
	}

	prompt := BuildPrompt(custom, product, slot)
	g.addLog(ctx, product.ID, slot, models.LogStarted, nil)

	text, err := g.completer.Complete(ctx, prompt, MaxTokens(slot))
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = ErrEmptyContent
		}
	}
	if err != nil {
		g.metrics.IncGeneration(string(slot), false)
		g.addLog(ctx, product.ID, slot, models.LogError, err)
		return "", fmt.Errorf("can't generate %s: %w", slot, err)
	}

	input, err := json.Marshal(promptInput{Prompt: prompt, ProductData: toProductData(product)})
	if err != nil {
		return "", fmt.Errorf("can't encode prompt input: %w", err)
	}

	generation := &models.AIGeneration{
		ID:               uuid.New(),
		ProductID:        product.ID,
		PromptType:       slot,
		PromptInput:      string(input),
		GeneratedContent: text,
		ModelUsed:        g.completer.Model(),
	}
	if err := g.storage.SaveGeneratedContent(ctx, generation); err != nil {
		g.metrics.IncGeneration(string(slot), false)
		return "", fmt.Errorf("%w: can't save generated %s: %w", ErrStorage, slot, err)
	}

	product.SetContent(slot, text)
	g.metrics.IncGeneration(string(slot), true)
	g.addLog(ctx, product.ID, slot, models.LogSuccess, nil)

	return text, nil
}

// GenerateAll generates every slot in order. Later prompts see earlier results.
// Returned error is non-nil only for database failures and context cancellation.
func (g *Generator) GenerateAll(ctx context.Context, product *models.Product) (*Outcome, error) {
	outcome := &Outcome{
		Texts:  map[models.ContentSlot]string{},
		Errors: map[models.ContentSlot]error{},
	}

	for _, slot := range models.ContentSlots() {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		text, err := g.Generate(ctx, product, slot)
		if errors.Is(err, ErrStorage) {
			return outcome, err
		}
		if err != nil {
			outcome.Errors[slot] = err
			continue
		}
		outcome.Texts[slot] = text
	}

	return outcome, nil
}

// GenerateForProduct loads product and generates single slot for it.
// Product becomes generated once all slots are filled.
func (g *Generator) GenerateForProduct(
	ctx context.Context,
	productID uuid.UUID,
	slot models.ContentSlot,
) (string, *models.Product, error) {
	product, err := g.storage.GetProduct(ctx, productID)
	if err != nil {
		return "", nil, fmt.Errorf("can't get product: %w", err)
	}

	text, err := g.Generate(ctx, product, slot)
	if err != nil {
		if !errors.Is(err, ErrStorage) && !errors.Is(err, ErrUnknownSlot) {
			g.markFailed(ctx, product)
		}
		return "", product, err
	}

	if product.HasAllContent() {
		if err := g.storage.SetContentStatus(ctx, product.ID, models.AIContentGenerated); err != nil {
			return "", product, fmt.Errorf("can't set content status: %w", err)
		}
		product.AIContentStatus = models.AIContentGenerated
	}

	return text, product, nil
}

// markFailed marks product content failed unless it was already generated.
func (g *Generator) markFailed(ctx context.Context, product *models.Product) {
	if product.AIContentStatus == models.AIContentGenerated {
		return
	}

	if err := g.storage.SetContentStatus(ctx, product.ID, models.AIContentFailed); err != nil {
		g.logger.Warn().Err(err).Str("productId", product.ID.String()).Msg("can't mark content failed")
		return
	}
	product.AIContentStatus = models.AIContentFailed
}

// addLog stores processing log. Failures are only logged.
func (g *Generator) addLog(
	ctx context.Context,
	productID uuid.UUID,
	slot models.ContentSlot,
	status models.LogStatus,
	cause error,
) {
	log := &models.ProcessingLog{
		ID:               uuid.New(),
		ProductID:        &productID,
		OperationType:    models.OperationAIGeneration,
		Status:           status,
		OperationDetails: map[string]any{"contentType": string(slot), "model": g.completer.Model()},
	}
	if cause != nil {
		log.ErrorMessage = lo.ToPtr(cause.Error())
	}

	if err := g.storage.AddProcessingLog(ctx, log); err != nil {
		g.logger.Warn().Err(err).
			Str("productId", productID.String()).
			Str("contentType", string(slot)).
			Msg("can't add processing log")
	}
}

func toProductData(p *models.Product) productData {
	return productData{
		Brand:          p.Brand,
		SKU:            p.SKU,
		OENumber:       p.OENumber,
		ProductName:    lo.FromPtrOr(p.ProductName, ""),
		Category:       lo.FromPtrOr(p.Category, ""),
		Price:          p.Price,
		OEMNumbers:     p.OEMNumbers,
		TechnicalSpecs: p.TechnicalSpecs,
		HasEbayData:    p.HasMarketplaceData(),
	}
}
