package marketplace

import "errors"

var (
	// ErrNoCredentials is returned when neither static token nor client credentials are configured.
	ErrNoCredentials = errors.New("marketplace credentials are not configured")
	// ErrEmptyToken is returned when OAuth response has no access token.
	ErrEmptyToken = errors.New("empty access token")
)
