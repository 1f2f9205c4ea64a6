package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

const (
	dependency     = "google_search"
	resultsPerPage = "3"
	maxResults     = 8
)

var (
	// ErrNoResults is returned when none of the queries returned any result.
	ErrNoResults = errors.New("no search results found")
	// ErrNotConfigured is returned when api key or search engine id is missing.
	ErrNotConfigured = errors.New("search api key or search engine id not configured")
	// ErrMissingInput is returned when brand or sku is empty.
	ErrMissingInput = errors.New("brand and sku are required")
)

// Fetcher sends http requests.
type Fetcher interface {
	Do(ctx context.Context, dependency string, limiter *rate.Limiter, req *http.Request) ([]byte, error)
}

// Config holds search API configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	SearchEngineID string
}

// Item is single search result.
type Item struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Snippet string  `json:"snippet"`
	PageMap PageMap `json:"pagemap"`
}

func (i Item) text() string {
	return i.Title + " " + i.Snippet
}

// PageMap holds structured data of search result.
type PageMap struct {
	CSEImage []Image             `json:"cse_image"`
	MetaTags []map[string]string `json:"metatags"`
}

// Image is search result thumbnail.
type Image struct {
	Src string `json:"src"`
}

// Result is data extracted from search results.
type Result struct {
	Items          []Item
	ProductName    string
	Category       string
	Images         []string
	TechnicalSpecs models.TechnicalSpecs
	OEMNumbers     []string
	Price          *float64
	EAN            string
}

type searchResponse struct {
	Items []Item `json:"items"`
}

// Client searches web for auto parts data.
type Client struct {
	cfg     Config
	fetcher Fetcher
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// NewClient returns new Client.
func NewClient(fetcher Fetcher, limiter *rate.Limiter, cfg Config, logger *zerolog.Logger) *Client {
	return &Client{
		cfg:     cfg,
		fetcher: fetcher,
		limiter: limiter,
		logger:  logger,
	}
}

// Queries returns search queries for part.
func Queries(brand, sku string) []string {
	prefix := fmt.Sprintf("%q %q", brand, sku)
	return []string{
		prefix + " auto parts specifications",
		prefix + ` "Packaging length [cm]"`,
		prefix + ` "Packaging width [cm]"`,
		prefix + ` "Packaging height [cm]"`,
		prefix + ` "EAN number"`,
		prefix + ` "fitting position"`,
	}
}

// Search runs all queries and extracts data from deduplicated results.
// Failed queries are skipped. ErrNoResults is returned when nothing was found.
func (c *Client) Search(ctx context.Context, brand, sku string) (*Result, error) {
	brand = strings.TrimSpace(brand)
	sku = strings.TrimSpace(sku)
	if brand == "" || sku == "" {
		return nil, ErrMissingInput
	}
	if c.cfg.APIKey == "" || c.cfg.SearchEngineID == "" {
		return nil, ErrNotConfigured
	}

	var items []Item
	for _, query := range Queries(brand, sku) {
		found, err := c.search(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn().
				Err(err).
				Str("query", query).
				Msg("search query failed")
			continue
		}
		items = append(items, found...)
	}

	items = lo.UniqBy(items, func(item Item) string {
		return item.Link
	})
	if len(items) == 0 {
		return nil, ErrNoResults
	}

	return Extract(lo.Slice(items, 0, maxResults), brand, sku), nil
}

func (c *Client) search(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{
		"key": {c.cfg.APIKey},
		"cx":  {c.cfg.SearchEngineID},
		"q":   {query},
		"num": {resultsPerPage},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("can't create search request: %w", err)
	}

	body, err := c.fetcher.Do(ctx, dependency, c.limiter, req)
	if err != nil {
		return nil, fmt.Errorf("can't search: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("can't decode search response: %w", err)
	}

	return resp.Items, nil
}
