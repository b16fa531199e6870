package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Client is a JSON-over-HTTP command/query dispatcher. Every call is
// bounded by the caller's context deadline, retried with exponential
// backoff up to the configured number of tries, and guarded by a
// circuit breaker so a dead collaborator fails fast instead of eating
// the saga's time budget.
type Client struct {
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	maxTries uint
	logger   *zap.Logger
}

// Config holds dispatcher settings for one collaborator
type Config struct {
	// Name identifies the breaker in logs
	Name string

	// Timeout is the transport-level cap per attempt; the per-call
	// context deadline still bounds the call as a whole.
	Timeout time.Duration

	// MaxTries bounds the retry loop, first attempt included.
	// 0 means a single attempt.
	MaxTries uint
}

// NewClient creates a dispatcher for one collaborator service
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 1
	}

	settings := gobreaker.Settings{
		Name:    cfg.Name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		breaker:  gobreaker.NewCircuitBreaker[*http.Response](settings),
		maxTries: cfg.MaxTries,
		logger:   logger,
	}
}

// PostJSON sends body as JSON and decodes a 2xx response into out when
// out is non-nil. Non-2xx responses become errors; 5xx and transport
// errors are retried, 4xx are not.
func (c *Client) PostJSON(ctx context.Context, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	resp, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}
	return nil
}

// GetJSON fetches url and decodes a 2xx response into out. It reports
// found=false without error when the collaborator answers 404.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) (bool, error) {
	resp, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	})
	if err != nil {
		var notFound *statusError
		if errors.As(err, &notFound) && notFound.code == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errors.Wrap(err, "failed to decode response body")
	}
	return true, nil
}

// statusError carries a non-2xx response status through the retry loop
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return http.StatusText(e.code) + ": " + e.body
}

func (c *Client) do(ctx context.Context, newRequest func() (*http.Request, error)) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		resp, err := c.breaker.Execute(func() (*http.Response, error) {
			req, err := newRequest()
			if err != nil {
				return nil, backoff.Permanent(err)
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return nil, err
			}

			// 5xx counts as a breaker failure and stays retryable
			if resp.StatusCode >= 500 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
				resp.Body.Close()
				return nil, &statusError{code: resp.StatusCode, body: string(body)}
			}
			return resp, nil
		})
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			resp.Body.Close()
			return nil, backoff.Permanent(&statusError{code: resp.StatusCode, body: string(body)})
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	return resp, nil
}
