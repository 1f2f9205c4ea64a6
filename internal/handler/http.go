package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/catalog"
	"github.com/MichalMitros/parts-enricher/internal/content"
	"github.com/MichalMitros/parts-enricher/internal/importer"
	"github.com/MichalMitros/parts-enricher/internal/marketplace"
	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	"github.com/MichalMitros/parts-enricher/internal/processor"
	"github.com/MichalMitros/parts-enricher/internal/websearch"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Enricher --filename enricher.go
//go:generate mockery --name Generator --filename generator.go
//go:generate mockery --name Processor --filename processor.go
//go:generate mockery --name Importer --filename importer.go
//go:generate mockery --name Commander --filename commander.go

// ErrCommandsDisabled is returned when batch processing is requested without command bus.
var ErrCommandsDisabled = errors.New("process batch commands are disabled")

// Storage reads and manages batches, products and prompt templates.
type Storage interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error)
	GetGenerations(ctx context.Context, productID uuid.UUID) ([]models.AIGeneration, error)
	GetBatch(ctx context.Context, batchID uuid.UUID) (*models.Batch, error)
	ListBatches(ctx context.Context, limit int64) ([]models.Batch, error)
	DeleteBatch(ctx context.Context, batchID uuid.UUID) error
	GetProducts(ctx context.Context, batchID uuid.UUID, filter storage.ProductFilter) ([]models.Product, error)
	ListPromptTemplates(ctx context.Context) ([]models.PromptTemplate, error)
	SavePromptTemplate(ctx context.Context, template *models.PromptTemplate) error
	DeletePromptTemplate(ctx context.Context, slot models.ContentSlot) error
}

// Enricher runs single enrichment source for product.
type Enricher interface {
	EnrichFromMarketplace(
		ctx context.Context,
		product *models.Product,
		query marketplace.Query,
	) (*marketplace.Result, error)
	EnrichFromWeb(ctx context.Context, product *models.Product) (*websearch.Result, error)
	EnrichFromCatalog(ctx context.Context, product *models.Product) (*catalog.Result, error)
}

// Generator generates content for stored product.
type Generator interface {
	GenerateForProduct(
		ctx context.Context,
		productID uuid.UUID,
		slot models.ContentSlot,
	) (string, *models.Product, error)
}

// Processor processes import batches.
type Processor interface {
	ProcessBatch(ctx context.Context, batchID uuid.UUID) (*processor.Summary, error)
	RestartBatch(ctx context.Context, batchID uuid.UUID) (*processor.Summary, error)
}

// Importer creates import batches from CSV files.
type Importer interface {
	Import(ctx context.Context, name string, r io.Reader) (*models.Batch, *importer.Validation, error)
}

// Commander enqueues batch processing.
type Commander interface {
	SendProcessBatchCommand(ctx context.Context, batchID uuid.UUID) error
}

// HTTPOption is custom configuration of HTTPHandler.
type HTTPOption func(h *HTTPHandler)

// WithCommander enables enqueueing uploaded batches for processing.
func WithCommander(c Commander) HTTPOption {
	return func(h *HTTPHandler) {
		h.commander = c
	}
}

// WithMetrics enables request metrics and /metrics endpoint.
func WithMetrics(m *metrics.Metrics) HTTPOption {
	return func(h *HTTPHandler) {
		h.metrics = m
	}
}

// HTTPHandler serves remote functions and admin API.
type HTTPHandler struct {
	storage   Storage
	enricher  Enricher
	generator Generator
	processor Processor
	importer  Importer
	commander Commander
	logger    *zerolog.Logger
	metrics   *metrics.Metrics
}

// NewHTTPHandler returns new HTTPHandler.
func NewHTTPHandler(
	storage Storage,
	enr Enricher,
	gen Generator,
	proc Processor,
	imp Importer,
	logger *zerolog.Logger,
	ops ...HTTPOption,
) *HTTPHandler {
	h := &HTTPHandler{
		storage:   storage,
		enricher:  enr,
		generator: gen,
		processor: proc,
		importer:  imp,
		logger:    logger,
	}

	for _, op := range ops {
		op(h)
	}

	return h
}

// Router returns gin engine with all routes registered.
func (h *HTTPHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		h.requestLogger(),
		preflight(cors.New(cors.Options{
			AllowedOrigins:       []string{"*"},
			AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:       []string{"*"},
			OptionsSuccessStatus: http.StatusOK,
		})),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{})))
	}

	functions := router.Group("/functions/v1")
	functions.POST("/ebay-search", h.ebaySearch)
	functions.POST("/google-product-search", h.googleProductSearch)
	functions.POST("/autodoc-scraper", h.autodocScraper)
	functions.POST("/deepseek-content-generator", h.contentGenerator)
	functions.POST("/batch-processor", h.batchProcessor)
	functions.POST("/restart-batch", h.restartBatch)

	api := router.Group("/api/v1")
	api.POST("/batches", h.uploadBatch)
	api.GET("/batches", h.listBatches)
	api.GET("/batches/:id", h.getBatch)
	api.DELETE("/batches/:id", h.deleteBatch)
	api.GET("/batches/:id/products", h.listProducts)
	api.GET("/batches/:id/export", h.exportBatch)
	api.GET("/products/:id", h.getProduct)
	api.GET("/prompts", h.listPrompts)
	api.PUT("/prompts/:slot", h.savePrompt)
	api.DELETE("/prompts/:slot", h.deletePrompt)

	return router
}

// preflight applies CORS headers and answers every OPTIONS request with empty 200.
func preflight(c *cors.Cors) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusOK)
			return
		}
		ctx.Next()
	}
}

func (h *HTTPHandler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.ObserveHTTP(c.Request.Method, route, status, latency)

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = h.logger.Error()
		case status >= http.StatusBadRequest:
			event = h.logger.Warn()
		default:
			event = h.logger.Debug()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("clientIp", c.ClientIP()).
			Strs("errors", c.Errors.Errors()).
			Msg("http request")
	}
}

// fail responds with error body, status is derived from error unless provided.
func fail(c *gin.Context, status int, err error) {
	if status == 0 {
		status = statusFor(err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func succeed(c *gin.Context, status int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(status, body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, platform.ErrBatchNotFound),
		errors.Is(err, platform.ErrProductNotFound),
		errors.Is(err, platform.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, platform.ErrInvalidTransition),
		errors.Is(err, content.ErrUnknownSlot),
		errors.Is(err, importer.ErrMissingColumns),
		errors.Is(err, importer.ErrEmptyFile),
		errors.Is(err, importer.ErrNoValidRows),
		errors.Is(err, ErrCommandsDisabled):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func idParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}
