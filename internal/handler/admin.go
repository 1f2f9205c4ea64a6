package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/exporter"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	defaultBatchesLimit = 50
	maxBatchesLimit     = 500
)

var errEmptyTemplate = errors.New("template can't be empty")

type templateRequest struct {
	Template string `json:"template" binding:"required"`
}

// uploadBatch imports CSV file into new batch, optionally enqueueing its processing.
func (h *HTTPHandler) uploadBatch(c *gin.Context) {
	process := queryFlag(c, "process")
	if process && h.commander == nil {
		fail(c, 0, ErrCommandsDisabled)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("can't read uploaded file: %w", err))
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("can't open uploaded file: %w", err))
		return
	}
	defer file.Close()

	name := c.PostForm("name")
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(header.Filename, ".csv")
	}

	batch, validation, err := h.importer.Import(c.Request.Context(), name, file)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(statusFor(err), gin.H{
			"success":    false,
			"error":      err.Error(),
			"validation": toValidationResponse(validation),
		})
		return
	}

	queued := false
	if process {
		if err := h.commander.SendProcessBatchCommand(c.Request.Context(), batch.ID); err != nil {
			fail(c, http.StatusInternalServerError, fmt.Errorf("batch %s created, but can't enqueue processing: %w", batch.ID, err))
			return
		}
		queued = true
	}

	h.logger.Info().
		Str("batchId", batch.ID.String()).
		Int32("totalItems", batch.TotalItems).
		Bool("queued", queued).
		Msg("batch uploaded")

	succeed(c, http.StatusCreated, gin.H{
		"batch":      toBatchResponse(batch),
		"validation": toValidationResponse(validation),
		"queued":     queued,
	})
}

func (h *HTTPHandler) listBatches(c *gin.Context) {
	limit := int64(defaultBatchesLimit)
	if value := c.Query("limit"); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil || parsed <= 0 {
			fail(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", value))
			return
		}
		limit = min(parsed, maxBatchesLimit)
	}

	batches, err := h.storage.ListBatches(c.Request.Context(), limit)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"batches": lo.Map(batches, func(_ models.Batch, ix int) batchResponse {
			return toBatchResponse(&batches[ix])
		}),
	})
}

func (h *HTTPHandler) getBatch(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	batch, err := h.storage.GetBatch(c.Request.Context(), id)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{"batch": toBatchResponse(batch)})
}

func (h *HTTPHandler) deleteBatch(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err := h.storage.DeleteBatch(c.Request.Context(), id); err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, nil)
}

// listProducts lists batch products for review.
// Query params scraping and content filter by comma separated statuses.
func (h *HTTPHandler) listProducts(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	filter, err := productFilter(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.storage.GetBatch(c.Request.Context(), id); err != nil {
		fail(c, 0, err)
		return
	}

	products, err := h.storage.GetProducts(c.Request.Context(), id, filter)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"products": lo.Map(products, func(_ models.Product, ix int) productResponse {
			return toProductResponse(&products[ix])
		}),
	})
}

// exportBatch downloads WooCommerce CSV with batch products.
// Only ready products are exported unless all=true.
func (h *HTTPHandler) exportBatch(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	batch, err := h.storage.GetBatch(c.Request.Context(), id)
	if err != nil {
		fail(c, 0, err)
		return
	}

	products, err := h.storage.GetProducts(c.Request.Context(), id, storage.ProductFilter{})
	if err != nil {
		fail(c, 0, err)
		return
	}

	var buf bytes.Buffer
	exported, err := exporter.WriteWooCommerceCSV(&buf, products, exporter.Options{
		IncludeImages: queryFlag(c, "images"),
		IncludeSpecs:  queryFlag(c, "specs"),
		ReadyOnly:     !queryFlag(c, "all"),
	})
	if err != nil {
		fail(c, 0, err)
		return
	}

	h.logger.Info().
		Str("batchId", batch.ID.String()).
		Int("exported", exported).
		Msg("batch exported")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(batch)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *HTTPHandler) getProduct(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.storage.GetProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, 0, err)
		return
	}

	generations, err := h.storage.GetGenerations(c.Request.Context(), id)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"product":     toProductResponse(product),
		"generations": lo.Map(generations, toGenerationResponse),
	})
}

func (h *HTTPHandler) listPrompts(c *gin.Context) {
	templates, err := h.storage.ListPromptTemplates(c.Request.Context())
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"prompts": lo.Map(templates, toTemplateResponse),
	})
}

func (h *HTTPHandler) savePrompt(c *gin.Context) {
	slot := parseSlot(c.Param("slot"))
	if !slot.Valid() {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown content type %q", c.Param("slot")))
		return
	}

	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Template) == "" {
		fail(c, http.StatusBadRequest, errEmptyTemplate)
		return
	}

	template := &models.PromptTemplate{Slot: slot, Template: req.Template}
	if err := h.storage.SavePromptTemplate(c.Request.Context(), template); err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{"slot": slot})
}

func (h *HTTPHandler) deletePrompt(c *gin.Context) {
	slot := parseSlot(c.Param("slot"))
	if !slot.Valid() {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown content type %q", c.Param("slot")))
		return
	}

	if err := h.storage.DeletePromptTemplate(c.Request.Context(), slot); err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{"slot": slot})
}

func productFilter(c *gin.Context) (storage.ProductFilter, error) {
	var filter storage.ProductFilter

	for _, value := range splitQuery(c.Query("scraping")) {
		status := models.ScrapingStatus(value)
		if !status.Valid() {
			return filter, fmt.Errorf("unknown scraping status %q", value)
		}
		filter.ScrapingStatuses = append(filter.ScrapingStatuses, status)
	}

	for _, value := range splitQuery(c.Query("content")) {
		status := models.AIContentStatus(value)
		if !status.Valid() {
			return filter, fmt.Errorf("unknown content status %q", value)
		}
		filter.AIContentStatuses = append(filter.AIContentStatuses, status)
	}

	return filter, nil
}

func splitQuery(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	}))
}

func queryFlag(c *gin.Context, name string) bool {
	flag, _ := strconv.ParseBool(c.Query(name))
	return flag
}

func exportFilename(batch *models.Batch) string {
	name := strings.Map(func(r rune) rune {
		if r == '"' || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, batch.Name)

	return fmt.Sprintf("woocommerce-%s-%s.csv", lo.Ternary(name == "", "batch", name), batch.ID.String()[:8])
}
