package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/enricher"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/processor"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type marketplaceSearchRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Brand     string    `json:"brand"`
	SKU       string    `json:"sku"`
	OENumber  string    `json:"oeNumber"`
}

type productSearchRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Brand     string    `json:"brand"`
	SKU       string    `json:"sku"`
}

// contentRequest keeps productData and hasEbayData for compatibility,
// content is always generated from stored product.
type contentRequest struct {
	ProductID   uuid.UUID      `json:"productId" binding:"required"`
	ContentType string         `json:"contentType" binding:"required"`
	ProductData map[string]any `json:"productData"`
	HasEbayData bool           `json:"hasEbayData"`
}

type batchRequest struct {
	BatchID uuid.UUID `json:"batchId" binding:"required"`
}

// ebaySearch searches marketplace for product and stores found listing.
func (h *HTTPHandler) ebaySearch(c *gin.Context) {
	var req marketplaceSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.storage.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		fail(c, 0, err)
		return
	}

	query := enricher.QueryFor(product)
	if req.Brand != "" {
		query.Brand = req.Brand
	}
	if req.SKU != "" {
		query.SKU = req.SKU
	}
	if req.OENumber != "" {
		query.OENumber = req.OENumber
	}

	result, err := h.enricher.EnrichFromMarketplace(c.Request.Context(), product, query)
	if err != nil {
		fail(c, 0, err)
		return
	}

	if result.Error != "" && !result.Found() {
		fail(c, http.StatusInternalServerError, fmt.Errorf("marketplace search failed: %s", result.Error))
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"strategy":       result.Strategy,
		"resultsFound":   len(result.Listings),
		"ebayItemId":     result.ItemID,
		"partNumberTags": len(result.PartNumberTags),
		"scrapingStatus": product.ScrapingStatus,
	})
}

// googleProductSearch searches web for product data and merges it into product.
func (h *HTTPHandler) googleProductSearch(c *gin.Context) {
	var req productSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.storage.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		fail(c, 0, err)
		return
	}

	result, err := h.enricher.EnrichFromWeb(c.Request.Context(), product)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"data":          fromWebResult(result),
		"searchResults": len(result.Items),
	})
}

// autodocScraper scrapes parts catalog page for product and merges found data.
func (h *HTTPHandler) autodocScraper(c *gin.Context) {
	var req productSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.storage.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		fail(c, 0, err)
		return
	}

	result, err := h.enricher.EnrichFromCatalog(c.Request.Context(), product)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"data": fromCatalogResult(result),
		"url":  result.URL,
	})
}

// contentGenerator generates single content slot for product.
func (h *HTTPHandler) contentGenerator(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	slot := parseSlot(req.ContentType)
	if !slot.Valid() {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown content type %q", req.ContentType))
		return
	}

	text, product, err := h.generator.GenerateForProduct(c.Request.Context(), req.ProductID, slot)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, gin.H{
		"content":         text,
		"contentType":     req.ContentType,
		"aiContentStatus": product.AIContentStatus,
	})
}

// batchProcessor processes pending products of batch.
func (h *HTTPHandler) batchProcessor(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	summary, err := h.processor.ProcessBatch(context.WithoutCancel(c.Request.Context()), req.BatchID)
	if err != nil {
		fail(c, 0, err)
		return
	}

	succeed(c, http.StatusOK, summaryBody(summary))
}

// restartBatch moves batch back to pending and processes it again.
func (h *HTTPHandler) restartBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	summary, err := h.processor.RestartBatch(context.WithoutCancel(c.Request.Context()), req.BatchID)
	if err != nil {
		fail(c, 0, err)
		return
	}

	body := summaryBody(summary)
	body["message"] = "Batch processing restarted successfully"
	succeed(c, http.StatusOK, body)
}

func summaryBody(summary *processor.Summary) gin.H {
	body := gin.H{
		"processed":    summary.Succeeded,
		"failed":       summary.Failed,
		"remaining":    summary.Remaining,
		"stoppedEarly": summary.StoppedEarly,
		"errors":       []string{},
	}
	if summary.Attempted == 0 {
		body["message"] = "No products to process"
	}
	if summary.Batch != nil {
		body["batch"] = toBatchResponse(summary.Batch)
		if summary.Batch.ErrorDetails != nil {
			body["errors"] = splitLines(*summary.Batch.ErrorDetails)
		}
	}
	return body
}

// parseSlot accepts slot names and seo_title alias used by admin UI.
func parseSlot(contentType string) models.ContentSlot {
	if contentType == "seo_title" {
		return models.SlotTitle
	}
	return models.ContentSlot(contentType)
}

func splitLines(text string) []string {
	return lo.Compact(strings.Split(text, "\n"))
}
