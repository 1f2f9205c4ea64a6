package handler_test

import (
	"bytes"
	"encoding/csv"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/exporter"
	"github.com/MichalMitros/parts-enricher/internal/handler"
	"github.com/MichalMitros/parts-enricher/internal/importer"
	"github.com/MichalMitros/parts-enricher/internal/platform"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	uploadCSV = "brand,sku,oe_number,title\nFebi,12345,1K0698151,Brake Pad Set\n"
	imported  = &importer.Validation{
		Rows:      []importer.Row{{Line: 2, Brand: "Febi", SKU: "12345", OENumber: "1K0698151", Title: "Brake Pad Set"}},
		TotalRows: 1,
	}
)

func uploadRequest(t *testing.T, path, name, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if name != "" {
		require.NoError(t, writer.WriteField("name", name))
	}
	if content != "" {
		part, err := writer.CreateFormFile("file", "spring-import.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUnitUploadBatch(t *testing.T) {
	batch := modelstesting.FakeBatch(func(b *models.Batch) {
		b.Name = "spring"
		b.TotalItems = 1
	})

	tests := map[string]struct {
		path         string
		name         string
		content      string
		withCommand  bool
		setup        func(f *fixture)
		wantStatus   int
		wantQueued   bool
		wantValidity bool
	}{
		"imported": {
			path:    "/api/v1/batches",
			name:    "spring",
			content: uploadCSV,
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(&batch, imported, nil).Once()
			},
			wantStatus:   http.StatusCreated,
			wantValidity: true,
		},
		"name from file name": {
			path:    "/api/v1/batches",
			content: uploadCSV,
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring-import", mock.Anything).Return(&batch, imported, nil).Once()
			},
			wantStatus:   http.StatusCreated,
			wantValidity: true,
		},
		"imported and queued": {
			path:        "/api/v1/batches?process=true",
			name:        "spring",
			content:     uploadCSV,
			withCommand: true,
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(&batch, imported, nil).Once()
				f.commander.On("SendProcessBatchCommand", mock.Anything, batch.ID).Return(nil).Once()
			},
			wantStatus:   http.StatusCreated,
			wantQueued:   true,
			wantValidity: true,
		},
		"processing without command bus": {
			path:       "/api/v1/batches?process=true",
			name:       "spring",
			content:    uploadCSV,
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		"enqueue failure": {
			path:        "/api/v1/batches?process=1",
			name:        "spring",
			content:     uploadCSV,
			withCommand: true,
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(&batch, imported, nil).Once()
				f.commander.On("SendProcessBatchCommand", mock.Anything, batch.ID).Return(assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		"missing file": {
			path:       "/api/v1/batches",
			name:       "spring",
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		"no valid rows": {
			path:    "/api/v1/batches",
			name:    "spring",
			content: "brand,sku,oe_number,title\n,,,\n",
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(nil, &importer.Validation{
					Errors:    []importer.RowError{{Line: 2, Message: "empty brand, sku, oe_number, title"}},
					TotalRows: 1,
				}, importer.ErrNoValidRows).Once()
			},
			wantStatus:   http.StatusBadRequest,
			wantValidity: true,
		},
		"storage failure": {
			path:    "/api/v1/batches",
			name:    "spring",
			content: uploadCSV,
			setup: func(f *fixture) {
				f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(nil, imported, assert.AnError).Once()
			},
			wantStatus:   http.StatusInternalServerError,
			wantValidity: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			var ops []handler.HTTPOption
			if tt.withCommand {
				ops = append(ops, handler.WithCommander(f.commander))
			}

			rec, body := record(t, f.router(ops...), uploadRequest(t, tt.path, tt.name, tt.content))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantValidity, body["validation"] != nil)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, tt.wantQueued, body["queued"])
				assert.Equal(t, batch.ID.String(), body["batch"].(map[string]any)["id"])
			}
		})
	}
}

func TestUnitUploadBatchValidationBody(t *testing.T) {
	f := newFixture(t)
	f.importer.On("Import", mock.Anything, "spring", mock.Anything).Return(nil, &importer.Validation{
		Errors:    []importer.RowError{{Line: 3, Message: "insufficient columns"}},
		TotalRows: 2,
	}, importer.ErrNoValidRows).Once()

	rec, body := record(t, f.router(), uploadRequest(t, "/api/v1/batches", "spring", uploadCSV))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	validation := body["validation"].(map[string]any)
	assert.Equal(t, float64(2), validation["totalRows"])
	assert.Equal(t, float64(0), validation["validRows"])
	assert.Len(t, validation["errors"], 1)
}

func TestUnitListBatches(t *testing.T) {
	batches := []models.Batch{modelstesting.FakeBatch(), modelstesting.FakeBatch()}

	tests := map[string]struct {
		query      string
		wantLimit  int64
		wantStatus int
	}{
		"default limit": {
			wantLimit:  50,
			wantStatus: http.StatusOK,
		},
		"custom limit": {
			query:      "?limit=10",
			wantLimit:  10,
			wantStatus: http.StatusOK,
		},
		"limit capped": {
			query:      "?limit=10000",
			wantLimit:  500,
			wantStatus: http.StatusOK,
		},
		"invalid limit": {
			query:      "?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
		"negative limit": {
			query:      "?limit=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			if tt.wantStatus == http.StatusOK {
				f.storage.On("ListBatches", mock.Anything, tt.wantLimit).Return(batches, nil).Once()
			}

			rec, body := serve(t, f.router(), http.MethodGet, "/api/v1/batches"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, body["batches"], 2)
			}
		})
	}
}

func TestUnitGetBatch(t *testing.T) {
	batch := modelstesting.FakeBatch()

	tests := map[string]struct {
		path       string
		err        error
		wantStatus int
	}{
		"found": {
			path:       "/api/v1/batches/" + batch.ID.String(),
			wantStatus: http.StatusOK,
		},
		"not found": {
			path:       "/api/v1/batches/" + batch.ID.String(),
			err:        platform.ErrBatchNotFound,
			wantStatus: http.StatusNotFound,
		},
		"invalid id": {
			path:       "/api/v1/batches/not-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			if !strings.HasSuffix(tt.path, "not-uuid") {
				f.storage.On("GetBatch", mock.Anything, batch.ID).Return(&batch, tt.err).Once()
			}

			rec, body := serve(t, f.router(), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				got := body["batch"].(map[string]any)
				assert.Equal(t, batch.Name, got["name"])
				assert.Equal(t, string(batch.Status), got["status"])
			}
		})
	}
}

func TestUnitDeleteBatch(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)
		f.storage.On("DeleteBatch", mock.Anything, id).Return(nil).Once()

		rec, body := serve(t, f.router(), http.MethodDelete, "/api/v1/batches/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.storage.On("DeleteBatch", mock.Anything, id).Return(platform.ErrBatchNotFound).Once()

		rec, _ := serve(t, f.router(), http.MethodDelete, "/api/v1/batches/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUnitListProducts(t *testing.T) {
	batch := modelstesting.FakeBatch()
	products := []models.Product{modelstesting.FakeEnrichedProduct(), modelstesting.FakeProduct()}

	tests := map[string]struct {
		query      string
		wantFilter storage.ProductFilter
		wantStatus int
	}{
		"all products": {
			wantStatus: http.StatusOK,
		},
		"filtered": {
			query: "?scraping=scraped,%20completed&content=failed",
			wantFilter: storage.ProductFilter{
				ScrapingStatuses:  []models.ScrapingStatus{models.ScrapingScraped, models.ScrapingCompleted},
				AIContentStatuses: []models.AIContentStatus{models.AIContentFailed},
			},
			wantStatus: http.StatusOK,
		},
		"unknown status": {
			query:      "?scraping=done",
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			if tt.wantStatus == http.StatusOK {
				f.storage.On("GetBatch", mock.Anything, batch.ID).Return(&batch, nil).Once()
				f.storage.On("GetProducts", mock.Anything, batch.ID, tt.wantFilter).Return(products, nil).Once()
			}

			rec, body := serve(t, f.router(), http.MethodGet, "/api/v1/batches/"+batch.ID.String()+"/products"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, body["products"], 2)
			}
		})
	}
}

func TestUnitExportBatch(t *testing.T) {
	batch := modelstesting.FakeBatch(func(b *models.Batch) { b.Name = "spring" })
	products := []models.Product{
		modelstesting.FakeEnrichedProduct(func(p *models.Product) { p.BatchID = batch.ID }),
		modelstesting.FakeProduct(func(p *models.Product) { p.BatchID = batch.ID }),
	}

	tests := map[string]struct {
		query    string
		wantRows int
	}{
		"ready only": {
			wantRows: 1,
		},
		"all products with images": {
			query:    "?all=true&images=true&specs=true",
			wantRows: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.storage.On("GetBatch", mock.Anything, batch.ID).Return(&batch, nil).Once()
			f.storage.On("GetProducts", mock.Anything, batch.ID, storage.ProductFilter{}).Return(products, nil).Once()

			rec, _ := serve(t, f.router(), http.MethodGet, "/api/v1/batches/"+batch.ID.String()+"/export"+tt.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="woocommerce-spring-`)

			records, err := csv.NewReader(rec.Body).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, tt.wantRows+1)
			assert.Equal(t, exporter.Header(), records[0])
		})
	}
}

func TestUnitExportBatchNotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.storage.On("GetBatch", mock.Anything, id).Return(nil, platform.ErrBatchNotFound).Once()

	rec, body := serve(t, f.router(), http.MethodGet, "/api/v1/batches/"+id.String()+"/export", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, platform.ErrBatchNotFound.Error(), body["error"])
}

func TestUnitGetProduct(t *testing.T) {
	product := modelstesting.FakeEnrichedProduct()
	generations := []models.AIGeneration{{
		ID:               uuid.New(),
		ProductID:        product.ID,
		PromptType:       models.SlotTitle,
		GeneratedContent: *product.SEOTitle,
		ModelUsed:        "deepseek-chat",
	}}

	f := newFixture(t)
	f.storage.On("GetProduct", mock.Anything, product.ID).Return(&product, nil).Once()
	f.storage.On("GetGenerations", mock.Anything, product.ID).Return(generations, nil).Once()

	rec, body := serve(t, f.router(), http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := body["product"].(map[string]any)
	assert.Equal(t, product.SKU, got["sku"])
	assert.Equal(t, *product.SEOTitle, got["seoTitle"])
	gens := body["generations"].([]any)
	require.Len(t, gens, 1)
	assert.Equal(t, "title", gens[0].(map[string]any)["promptType"])
	assert.Equal(t, "deepseek-chat", gens[0].(map[string]any)["modelUsed"])
}

func TestUnitPrompts(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newFixture(t)
		f.storage.On("ListPromptTemplates", mock.Anything).Return([]models.PromptTemplate{
			{Slot: models.SlotTitle, Template: "Title for {brand} {sku}"},
		}, nil).Once()

		rec, body := serve(t, f.router(), http.MethodGet, "/api/v1/prompts", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		prompts := body["prompts"].([]any)
		require.Len(t, prompts, 1)
		assert.Equal(t, "title", prompts[0].(map[string]any)["slot"])
	})

	tests := map[string]struct {
		method     string
		path       string
		body       any
		setup      func(f *fixture)
		wantStatus int
	}{
		"save": {
			method: http.MethodPut,
			path:   "/api/v1/prompts/meta_description",
			body:   gin.H{"template": "Meta for {brand} {sku}"},
			setup: func(f *fixture) {
				f.storage.On("SavePromptTemplate", mock.Anything, &models.PromptTemplate{
					Slot:     models.SlotMetaDescription,
					Template: "Meta for {brand} {sku}",
				}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		"save seo title alias": {
			method: http.MethodPut,
			path:   "/api/v1/prompts/seo_title",
			body:   gin.H{"template": "Title"},
			setup: func(f *fixture) {
				f.storage.On("SavePromptTemplate", mock.Anything, &models.PromptTemplate{
					Slot:     models.SlotTitle,
					Template: "Title",
				}).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		"save blank template": {
			method:     http.MethodPut,
			path:       "/api/v1/prompts/title",
			body:       gin.H{"template": "   "},
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		"save unknown slot": {
			method:     http.MethodPut,
			path:       "/api/v1/prompts/summary",
			body:       gin.H{"template": "x"},
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		"delete": {
			method: http.MethodDelete,
			path:   "/api/v1/prompts/long_description",
			setup: func(f *fixture) {
				f.storage.On("DeletePromptTemplate", mock.Anything, models.SlotLongDescription).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		"delete missing": {
			method: http.MethodDelete,
			path:   "/api/v1/prompts/title",
			setup: func(f *fixture) {
				f.storage.On("DeletePromptTemplate", mock.Anything, models.SlotTitle).Return(platform.ErrTemplateNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec, _ := serve(t, f.router(), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUnitHealthz(t *testing.T) {
	f := newFixture(t)

	rec, body := serve(t, f.router(), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}
