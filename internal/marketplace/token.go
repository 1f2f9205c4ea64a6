package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	oauthScope = "https://api.ebay.com/oauth/api_scope"
	// tokenRefreshMargin is time before expiry when token is considered stale.
	tokenRefreshMargin = 5 * time.Minute
)

// TokenManager returns marketplace bearer token.
// Static token is returned as-is, otherwise token is minted with client credentials grant and cached.
type TokenManager struct {
	fetcher      Fetcher
	limiter      *rate.Limiter
	oauthURL     string
	clientID     string
	clientSecret string
	staticToken  string
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenManager returns new TokenManager.
func NewTokenManager(fetcher Fetcher, limiter *rate.Limiter, cfg Config) *TokenManager {
	return &TokenManager{
		fetcher:      fetcher,
		limiter:      limiter,
		oauthURL:     cfg.OAuthURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		staticToken:  cfg.AccessToken,
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Token returns valid access token.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if m.staticToken != "" {
		return m.staticToken, nil
	}
	if m.clientID == "" || m.clientSecret == "" {
		return "", ErrNoCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.now().Before(m.expiresAt.Add(-tokenRefreshMargin)) {
		return m.token, nil
	}

	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {oauthScope},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.oauthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("can't create token request: %w", err)
	}
	req.SetBasicAuth(m.clientID, m.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := m.fetcher.Do(ctx, dependencyOAuth, m.limiter, req)
	if err != nil {
		return "", fmt.Errorf("can't mint access token: %w", err)
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("can't decode token response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("can't mint access token: %w", ErrEmptyToken)
	}

	m.token = resp.AccessToken
	m.expiresAt = m.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	return m.token, nil
}
