package keepalive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Bounds of an accepted Retry-After value, in seconds.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

type Client interface {
	Ping(ctx context.Context) (int, error)
}

// HTTPClient pings a single URL with GET.
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

func NewHTTPClient(url string) HTTPClient {
	return HTTPClient{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// Ping returns the response status. A 429 yields *TooManyRequestError, any other status from 400 up
// *StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) Ping(ctx context.Context) (status int, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if reqErr != nil {
		return 0, fmt.Errorf("create request: %s", reqErr.Error())
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return 0, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return resp.StatusCode, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode >= http.StatusBadRequest:
		return resp.StatusCode, NewStatusCodeError(resp.StatusCode)
	default:
		return resp.StatusCode, nil
	}
}

// parseRetryAfter falls back to defaultRetryAfter on a missing, malformed or out of range value.
func parseRetryAfter(value string) time.Duration {
	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil ||
		retryAfter.LessThan(decimal.NewFromInt(minRetryAfter)) ||
		retryAfter.GreaterThan(decimal.NewFromInt(maxRetryAfter)) {
		retryAfter = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
