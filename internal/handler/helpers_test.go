package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MichalMitros/parts-enricher/internal/handler"
	"github.com/MichalMitros/parts-enricher/internal/handler/mocks"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	storage   *mocks.Storage
	enricher  *mocks.Enricher
	generator *mocks.Generator
	processor *mocks.Processor
	importer  *mocks.Importer
	commander *mocks.Commander
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		storage:   mocks.NewStorage(t),
		enricher:  mocks.NewEnricher(t),
		generator: mocks.NewGenerator(t),
		processor: mocks.NewProcessor(t),
		importer:  mocks.NewImporter(t),
		commander: mocks.NewCommander(t),
	}
}

func (f *fixture) router(ops ...handler.HTTPOption) http.Handler {
	logger := zerolog.Nop()
	h := handler.NewHTTPHandler(f.storage, f.enricher, f.generator, f.processor, f.importer, &logger, ops...)
	return h.Router()
}

func serve(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return record(t, router, req)
}

func record(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}
