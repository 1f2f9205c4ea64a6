package helpers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/MichalMitros/parts-enricher/internal/platform/models/modelstesting"
	"github.com/MichalMitros/parts-enricher/internal/platform/storage"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"

	// GeneratedText is returned by mocked completion API for every prompt.
	GeneratedText = "Bosch Brake Pad Set Front Axle"

	waitTimeout = time.Minute
)

// Upstreams are mocked third party APIs used by enrichment pipeline.
type Upstreams struct {
	Server *httptest.Server
}

// SearchURL returns mocked marketplace search endpoint.
func (u *Upstreams) SearchURL() string { return u.Server.URL + "/ebay/search" }

// TradingURL returns mocked marketplace item details endpoint.
func (u *Upstreams) TradingURL() string { return u.Server.URL + "/ebay/trading" }

// WebSearchURL returns mocked web search endpoint.
func (u *Upstreams) WebSearchURL() string { return u.Server.URL + "/google" }

// CompletionURL returns mocked completion API base URL.
func (u *Upstreams) CompletionURL() string { return u.Server.URL + "/deepseek" }

// PrepareMockedUpstreams is helper function for mocking marketplace, web search and completion APIs.
// Item details are read from decoder test data.
func PrepareMockedUpstreams(t *testing.T) *Upstreams {
	t.Helper()

	itemXML, err := os.ReadFile("../internal/decoder/testdata/get_item.xml")
	if err != nil {
		require.FailNow(t, "can't read item details test data", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ebay/search", func(wrt http.ResponseWriter, req *http.Request) {
		writeJSON(t, wrt, map[string]any{
			"itemSummaries": []map[string]any{{
				"itemId":       "v1|204512345678|0",
				"title":        "BOSCH 0986494524 Brake Pad Set Front Axle",
				"condition":    "New",
				"price":        map[string]string{"value": "42.50", "currency": "USD"},
				"image":        map[string]string{"imageUrl": "https://i.ebayimg.com/images/g/pads/s-l1600.jpg"},
				"itemWebUrl":   "https://www.ebay.com/itm/204512345678",
				"itemLocation": map[string]string{"country": "US"},
			}},
		})
	})
	mux.HandleFunc("/ebay/trading", func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "text/xml")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write(itemXML)
	})
	mux.HandleFunc("/google", func(wrt http.ResponseWriter, req *http.Request) {
		writeJSON(t, wrt, map[string]any{
			"items": []map[string]any{{
				"title":   "Bosch 0986494524 Brake Pad Set | Brakes",
				"link":    "https://parts.example.com/bosch-0986494524?q=" + req.URL.Query().Get("q"),
				"snippet": "Width: 131.8 mm. Height: 52.9 mm. Thickness: 18.5 mm. Price: 39.99 EUR",
			}},
		})
	})
	mux.HandleFunc("/deepseek/chat/completions", func(wrt http.ResponseWriter, req *http.Request) {
		writeJSON(t, wrt, map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{"role": "assistant", "content": GeneratedText},
			}},
		})
	})

	srv := httptest.NewServer(mux)

	t.Cleanup(func() {
		srv.Close()
	})

	return &Upstreams{Server: srv}
}

func writeJSON(t *testing.T, wrt http.ResponseWriter, body any) {
	wrt.Header().Add(contentType, "application/json")
	wrt.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(wrt).Encode(body); err != nil {
		t.Error("can't encode mocked response", err)
	}
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateCSV generates import CSV with n fake products and returns it with products in CSV order.
func GenerateCSV(t *testing.T, n int) ([]byte, []models.Product) {
	t.Helper()

	products := make([]models.Product, n)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"brand", "sku", "oe_number", "title"}); err != nil {
		require.FailNow(t, "can't write csv header", err)
	}
	for ix := range products {
		products[ix] = modelstesting.FakeProduct()
		err := w.Write([]string{products[ix].Brand, products[ix].SKU, products[ix].OENumber, products[ix].OriginalTitle})
		if err != nil {
			require.FailNow(t, "can't write csv row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		require.FailNow(t, "can't flush csv", err)
	}

	return buf.Bytes(), products
}

// WaitForBatch is blocking helper function, returns batch after it is completed or failed.
func WaitForBatch(t *testing.T, pg storage.Postgres, batchID uuid.UUID) *models.Batch {
	t.Helper()

	timeout := time.After(waitTimeout)
	for {
		select {
		case <-timeout:
			require.FailNow(t, "batch wasn't processed in time", batchID)
		case <-time.After(time.Millisecond * 250):
		}

		batch, err := pg.GetBatch(context.Background(), batchID)
		if err != nil {
			require.FailNow(t, "can't get batch", err)
		}
		if batch.Status == models.BatchCompleted || batch.Status == models.BatchFailed {
			return batch
		}
	}
}
