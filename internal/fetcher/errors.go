package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrStatusNotOK is returned when http response had status other than 2xx.
	ErrStatusNotOK = errors.New("response status is not 2xx")
	// ErrRateLimited is returned when upstream responded with 429 Too Many Requests.
	ErrRateLimited = errors.New("rate limited by upstream")
)

// StatusError is returned for non-2xx responses. It carries status code and truncated body.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrStatusNotOK, e.Code, http.StatusText(e.Code))
}

// Is makes errors.Is match ErrStatusNotOK and, for 429, ErrRateLimited.
func (e *StatusError) Is(target error) bool {
	if target == ErrStatusNotOK {
		return true
	}
	return target == ErrRateLimited && e.Code == http.StatusTooManyRequests
}

// ErrorType returns metrics label describing error.
func ErrorType(err error) string {
	if err == nil {
		return "unknown"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	if errors.Is(err, ErrRateLimited) {
		return "rate_limited"
	}
	if errors.Is(err, ErrStatusNotOK) {
		return "status"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection"
	}
	return "other"
}
