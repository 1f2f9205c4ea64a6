package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/fetcher"
	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"github.com/gocolly/colly/v2"
)

const dependency = "autodoc"

var (
	// ErrMissingInput is returned when brand or sku is empty.
	ErrMissingInput = errors.New("brand and sku are required")
	// ErrNotHTML is returned when catalog page wasn't html document.
	ErrNotHTML = errors.New("response is not html document")
)

// Config holds catalog scraper configuration.
type Config struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	Delay       time.Duration
	RandomDelay time.Duration
}

// Option configures Scraper.
type Option func(s *Scraper)

// WithTransport sets http transport used by collector.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Scraper) {
		s.collector.WithTransport(rt)
	}
}

// WithMetrics sets metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scraper) {
		s.metrics = m
	}
}

// Scraper scrapes parts catalog search page.
type Scraper struct {
	cfg       Config
	collector *colly.Collector
	metrics   *metrics.Metrics
}

// NewScraper returns new Scraper.
func NewScraper(cfg Config, opts ...Option) (*Scraper, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse catalog base url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("catalog base url must include a host")
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	if cfg.Timeout > 0 {
		collector.SetRequestTimeout(cfg.Timeout)
	}
	if err := collector.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       cfg.Delay,
		RandomDelay: cfg.RandomDelay,
	}); err != nil {
		return nil, fmt.Errorf("can't configure catalog rate limits: %w", err)
	}

	s := &Scraper{
		cfg:       cfg,
		collector: collector,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// SearchURL returns catalog search page url for part.
func (s *Scraper) SearchURL(brand, sku string) string {
	return fmt.Sprintf("%s/spares-search?keyword=%s+%s",
		strings.TrimSuffix(s.cfg.BaseURL, "/"), url.QueryEscape(brand), url.QueryEscape(sku),
	)
}

// Scrape visits catalog search page and extracts part data from it.
func (s *Scraper) Scrape(ctx context.Context, brand, sku string) (*Result, error) {
	brand = strings.TrimSpace(brand)
	sku = strings.TrimSpace(sku)
	if brand == "" || sku == "" {
		return nil, ErrMissingInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pageURL := s.SearchURL(brand, sku)
	collector := s.collector.Clone()

	var (
		result    *Result
		statusErr error
		start     time.Time
	)

	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
			return
		}
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-GB,en;q=0.9,en-US;q=0.8")
		r.Headers.Set("Cache-Control", "no-cache")
		start = time.Now()
	})

	collector.OnResponse(func(r *colly.Response) {
		s.metrics.ObserveRequest(dependency, time.Since(start))
	})

	collector.OnError(func(r *colly.Response, err error) {
		s.metrics.ObserveRequest(dependency, time.Since(start))
		if r != nil && r.StatusCode != 0 {
			statusErr = &fetcher.StatusError{Code: r.StatusCode}
		} else {
			statusErr = err
		}
		s.metrics.IncError(dependency, fetcher.ErrorType(statusErr))
	})

	collector.OnHTML("html", func(e *colly.HTMLElement) {
		result = extract(e, brand, sku)
	})

	if err := collector.Visit(pageURL); err != nil {
		if statusErr != nil {
			err = statusErr
		}
		return nil, fmt.Errorf("can't scrape %s: %w", pageURL, err)
	}
	collector.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("can't scrape %s: %w", pageURL, ErrNotHTML)
	}
	result.URL = pageURL

	return result, nil
}
