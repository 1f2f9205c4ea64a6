package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/decoder"
	"github.com/MichalMitros/parts-enricher/internal/platform/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

const (
	dependencySearch = "ebay_search"
	dependencyDetail = "ebay_detail"
	dependencyOAuth  = "ebay_oauth"

	// keptResults is number of search results stored with product.
	keptResults = 5

	compatibilityLevel = "967"
)

// Search strategies in order of use.
const (
	StrategyBrandSKU = "brand_sku"
	StrategyBrandOE  = "brand_oe"
	StrategyOEOnly   = "oe_only"
)

// Fetcher sends http requests.
type Fetcher interface {
	Do(ctx context.Context, dependency string, limiter *rate.Limiter, req *http.Request) ([]byte, error)
}

// Config holds marketplace API configuration.
type Config struct {
	SearchURL     string
	TradingURL    string
	OAuthURL      string
	AccessToken   string
	ClientID      string
	ClientSecret  string
	DevID         string
	MarketplaceID string
	CategoryID    string
	Limit         int
	RPS           float64
	CacheSize     int
	CacheTTL      time.Duration
}

// Query is part identity used to search marketplace.
type Query struct {
	Brand    string
	SKU      string
	OENumber string
}

// Result is marketplace search outcome. Upstream failures are reported in Error, never as Go error.
type Result struct {
	Strategy       string
	Listings       []models.Listing
	SelectedItem   *models.Listing
	ItemID         string
	Details        *models.ItemDetails
	PartNumberTags []string
	Error          string
}

// Found returns true if any listing survived filtering.
func (r *Result) Found() bool {
	return len(r.Listings) > 0
}

// MarketplaceData returns data stored with product. It's nil when item details weren't fetched.
func (r *Result) MarketplaceData(now time.Time) *models.MarketplaceData {
	if r.Details == nil {
		return nil
	}
	return &models.MarketplaceData{
		SearchStrategy: r.Strategy,
		SearchResults:  lo.Slice(r.Listings, 0, keptResults),
		SelectedItem:   r.SelectedItem,
		ItemDetails:    r.Details,
		Timestamp:      now,
	}
}

// Client searches marketplace for auto parts.
type Client struct {
	cfg     Config
	fetcher Fetcher
	tokens  *TokenManager
	limiter *rate.Limiter
	cache   *expirable.LRU[string, []models.Listing]
}

// NewClient returns new Client. Limiter is shared by all marketplace calls.
func NewClient(fetcher Fetcher, limiter *rate.Limiter, cfg Config) *Client {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 1
	}
	return &Client{
		cfg:     cfg,
		fetcher: fetcher,
		tokens:  NewTokenManager(fetcher, limiter, cfg),
		limiter: limiter,
		cache:   expirable.NewLRU[string, []models.Listing](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

type strategy struct {
	name  string
	query string
}

func strategies(q Query) []strategy {
	brand := strings.TrimSpace(q.Brand)
	sku := strings.TrimSpace(q.SKU)
	oe := strings.TrimSpace(q.OENumber)

	var list []strategy
	if brand != "" && sku != "" {
		list = append(list, strategy{name: StrategyBrandSKU, query: brand + " " + sku})
	}
	if brand != "" && oe != "" {
		list = append(list, strategy{name: StrategyBrandOE, query: brand + " " + oe})
	}
	if oe != "" {
		list = append(list, strategy{name: StrategyOEOnly, query: oe})
	}
	return list
}

// Search tries search strategies in order. First strategy with filtered listings wins.
// Best listing details are fetched and part number tags extracted from them.
func (c *Client) Search(ctx context.Context, q Query) *Result {
	result := &Result{}

	for _, s := range strategies(q) {
		listings, err := c.search(ctx, s.query)
		if err != nil {
			result.Error = err.Error()
			continue
		}
		if len(listings) > 0 {
			result.Strategy = s.name
			result.Listings = listings
			result.Error = ""
			break
		}
	}

	if !result.Found() {
		return result
	}

	result.SelectedItem = SelectBestItem(result.Listings, q.Brand)
	result.ItemID = ExtractItemID(result.SelectedItem.ItemID)

	details, err := c.GetItem(ctx, result.ItemID)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Details = details
	result.PartNumberTags = ExtractPartNumberTags(details)

	return result
}

type searchResponse struct {
	Total         int           `json:"total"`
	ItemSummaries []itemSummary `json:"itemSummaries"`
}

type itemSummary struct {
	ItemID       string        `json:"itemId"`
	Title        string        `json:"title"`
	Condition    string        `json:"condition"`
	Price        *amount       `json:"price"`
	Image        *image        `json:"image"`
	ItemWebURL   string        `json:"itemWebUrl"`
	ItemLocation *itemLocation `json:"itemLocation"`
}

type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type image struct {
	ImageURL string `json:"imageUrl"`
}

type itemLocation struct {
	Country string `json:"country"`
}

func (s itemSummary) toListing() models.Listing {
	listing := models.Listing{
		ItemID:    s.ItemID,
		Title:     s.Title,
		Condition: s.Condition,
		ItemURL:   s.ItemWebURL,
	}
	if s.Price != nil {
		listing.Price = s.Price.Value
		listing.Currency = s.Price.Currency
	}
	if s.Image != nil {
		listing.ImageURL = s.Image.ImageURL
	}
	if s.ItemLocation != nil {
		listing.SellerCountry = s.ItemLocation.Country
	}
	return listing
}

// search returns English listings for query.
func (c *Client) search(ctx context.Context, query string) ([]models.Listing, error) {
	if listings, ok := c.cache.Get(query); ok {
		return listings, nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"q":            {query},
		"category_ids": {c.cfg.CategoryID},
		"fieldgroups":  {"COMPATIBILITY,MATCHING_ITEMS"},
		"limit":        {strconv.Itoa(c.cfg.Limit)},
		"offset":       {"0"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.SearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("can't create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.cfg.MarketplaceID)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	body, err := c.fetcher.Do(ctx, dependencySearch, c.limiter, req)
	if err != nil {
		return nil, fmt.Errorf("can't search items: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("can't decode search response: %w", err)
	}

	listings := FilterEnglish(lo.Map(resp.ItemSummaries, func(s itemSummary, _ int) models.Listing {
		return s.toListing()
	}))

	c.cache.Add(query, listings)

	return listings, nil
}

type getItemRequest struct {
	XMLName                      xml.Name `xml:"urn:ebay:apis:eBLBaseComponents GetItemRequest"`
	ErrorLanguage                string   `xml:"ErrorLanguage"`
	WarningLevel                 string   `xml:"WarningLevel"`
	IncludeItemCompatibilityList bool     `xml:"IncludeItemCompatibilityList"`
	IncludeItemSpecifics         bool     `xml:"IncludeItemSpecifics"`
	DetailLevel                  string   `xml:"DetailLevel"`
	ItemID                       string   `xml:"ItemID"`
}

// GetItem fetches item details with legacy XML call.
func (c *Client) GetItem(ctx context.Context, itemID string) (*models.ItemDetails, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := xml.Marshal(getItemRequest{
		ErrorLanguage:                "en_US",
		WarningLevel:                 "High",
		IncludeItemCompatibilityList: true,
		IncludeItemSpecifics:         true,
		DetailLevel:                  "ReturnAll",
		ItemID:                       itemID,
	})
	if err != nil {
		return nil, fmt.Errorf("can't encode item request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TradingURL,
		bytes.NewReader(append([]byte(xml.Header), payload...)),
	)
	if err != nil {
		return nil, fmt.Errorf("can't create item request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("X-EBAY-API-CALL-NAME", "GetItem")
	req.Header.Set("X-EBAY-API-SITEID", "0")
	req.Header.Set("X-EBAY-API-COMPATIBILITY-LEVEL", compatibilityLevel)
	req.Header.Set("X-EBAY-API-DEV-NAME", c.cfg.DevID)
	req.Header.Set("X-EBAY-API-APP-NAME", c.cfg.ClientID)
	req.Header.Set("X-EBAY-API-CERT-NAME", c.cfg.ClientSecret)
	req.Header.Set("X-EBAY-API-IAF-TOKEN", token)

	body, err := c.fetcher.Do(ctx, dependencyDetail, c.limiter, req)
	if err != nil {
		return nil, fmt.Errorf("can't get item details: %w", err)
	}

	details, err := decoder.DecodeItem(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("can't decode item details: %w", err)
	}
	if details.ItemID == "" {
		details.ItemID = itemID
	}

	return details, nil
}
