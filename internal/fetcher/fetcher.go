package fetcher

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MichalMitros/parts-enricher/internal/platform/metrics"
	"golang.org/x/time/rate"
)

// maxErrorBody limits response body kept in StatusError.
const maxErrorBody = 512

// Fetcher sends http requests to external APIs and reads their responses.
type Fetcher struct {
	client    *http.Client
	userAgent string
	metrics   *metrics.Metrics
}

// NewFetcher returns new Fetcher. Metrics can be nil.
func NewFetcher(client *http.Client, userAgent string, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		metrics:   m,
	}
}

// Client returns underlying http client.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Do waits for limiter token, sends request and returns whole response body.
// Non-2xx responses are returned as *StatusError.
func (f *Fetcher) Do(ctx context.Context, dependency string, limiter *rate.Limiter, req *http.Request) ([]byte, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("can't wait for %s rate limiter: %w", dependency, err)
		}
	}

	req = req.WithContext(ctx)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	f.metrics.ObserveRequest(dependency, time.Since(start))
	if err != nil {
		f.metrics.IncError(dependency, ErrorType(err))
		return nil, fmt.Errorf("can't get http response: %w", err)
	}

	body, err := readBody(resp)
	if err != nil {
		f.metrics.IncError(dependency, ErrorType(err))
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{Code: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
		f.metrics.IncError(dependency, ErrorType(statusErr))
		return nil, statusErr
	}

	return body, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	reader := resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		decompressed, err := decompressResponse(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			return nil, err
		}
		reader = decompressed
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("can't read response body: %w", err)
	}

	return body, nil
}

// decompressResponse returns io.ReadCloser with decompressed http response and error.
func decompressResponse(response io.ReadCloser) (io.ReadCloser, error) {
	decompressed, err := gzip.NewReader(response)
	if err != nil {
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
