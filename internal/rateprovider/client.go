package rateprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	maxAttempts   = 3
	baseBackoff   = 500 * time.Millisecond
	maxBackoff    = 4 * time.Second
	maxBodyBytes  = 1 << 20
	statusSuccess = "success"
)

// Client fetches exchange rates from the configured HTTP provider. Transient
// failures (network errors, timeouts, HTTP 5xx) are retried with doubling
// backoff up to maxAttempts; anything else fails immediately.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a provider client. The timeout bounds each individual
// attempt, not the whole retry sequence.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Result holds one provider response: the base currency and its quoted rates.
type Result struct {
	BaseCode string
	Rates    map[string]decimal.Decimal
	Attempts int
}

// providerResponse mirrors the open.er-api.com payload shape.
type providerResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// transientError marks a failure worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// FetchLatest retrieves the latest rates, retrying transient failures.
func (c *Client) FetchLatest(ctx context.Context) (*Result, error) {
	backoff := baseBackoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := c.fetchOnce(ctx)
		if err == nil {
			result.Attempts = attempt
			return result, nil
		}
		lastErr = err

		var te *transientError
		if !errors.As(err, &te) {
			return nil, fmt.Errorf("rate provider request failed: %w", err)
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return nil, fmt.Errorf("rate provider unavailable after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTransportTransient(err) {
			return nil, &transientError{err: err}
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, &transientError{err: fmt.Errorf("provider returned status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if payload.Result != statusSuccess {
		return nil, fmt.Errorf("provider reported result %q", payload.Result)
	}
	if len(payload.Rates) == 0 {
		return nil, errors.New("provider returned no rates")
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}

	return &Result{BaseCode: payload.BaseCode, Rates: rates}, nil
}

// isTransportTransient reports whether a transport error is worth retrying.
// Timeouts and other net errors qualify; request construction errors do not.
func isTransportTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
