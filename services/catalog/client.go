// Package catalog fetches service listing snapshots from the external
// catalog service. Filtering is done client-side by the matcher; this
// client only pulls one bulk page and validates its shape at the
// boundary so the rest of the engine can assume well-formed listings.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tembea/models"

	"go.uber.org/zap"
)

// Client yields a read-only snapshot of the external service catalog.
type Client interface {
	FetchSnapshot(ctx context.Context) ([]models.ServiceListing, error)
}

// FetchError wraps a failed or non-success catalog call. Retryable
// failures should be surfaced with a retry affordance, never as a
// wizard state error.
type FetchError struct {
	Message   string
	Retryable bool
	Err       error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog fetch failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("catalog fetch failed: %s", e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// envelope is the catalog service's response contract:
// GET /services?limit=N -> {success, services[], totalPages?}.
type envelope struct {
	Success    bool                    `json:"success"`
	Services   []models.ServiceListing `json:"services"`
	TotalPages int                     `json:"totalPages,omitempty"`
	Message    string                  `json:"message,omitempty"`
}

// HTTPClient is the production catalog client.
type HTTPClient struct {
	baseURL   string
	pageLimit int
	attempts  int
	httpc     *http.Client
	logger    *zap.Logger
}

const defaultAttempts = 3

// NewHTTPClient builds a catalog client against baseURL (e.g.
// "https://catalog.example.com/api"). The timeout bounds each attempt.
func NewHTTPClient(baseURL string, pageLimit int, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if pageLimit <= 0 {
		pageLimit = 500
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:   baseURL,
		pageLimit: pageLimit,
		attempts:  defaultAttempts,
		httpc:     &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// FetchSnapshot pulls one bulk page of listings. Up to three attempts
// are made with linear backoff; only transport errors and 5xx responses
// are retried.
func (c *HTTPClient) FetchSnapshot(ctx context.Context) ([]models.ServiceListing, error) {
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		listings, retryable, err := c.fetchOnce(ctx)
		if err == nil {
			return listings, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.logger.Warn("catalog fetch attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < c.attempts {
			select {
			case <-ctx.Done():
				return nil, &FetchError{Message: "context cancelled", Retryable: false, Err: ctx.Err()}
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}
	}
	return nil, lastErr
}

func (c *HTTPClient) fetchOnce(ctx context.Context) ([]models.ServiceListing, bool, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.pageLimit))
	endpoint := c.baseURL + "/services?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, &FetchError{Message: "building request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, true, &FetchError{Message: "request failed", Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, true, &FetchError{
			Message:   fmt.Sprintf("catalog returned status %d", resp.StatusCode),
			Retryable: true,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, &FetchError{
			Message: fmt.Sprintf("catalog returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, &FetchError{Message: "reading response", Retryable: true, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, &FetchError{Message: "decoding response", Err: err}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "non-success envelope"
		}
		return nil, false, &FetchError{Message: msg}
	}

	return c.sanitize(env.Services), false, nil
}

// sanitize drops malformed rows so downstream code never has to
// defensively null-check listing fields.
func (c *HTTPClient) sanitize(raw []models.ServiceListing) []models.ServiceListing {
	listings := make([]models.ServiceListing, 0, len(raw))
	for _, l := range raw {
		switch {
		case l.ID == "":
			c.logger.Debug("dropping listing without id", zap.String("title", l.Title))
		case l.Price < 0:
			c.logger.Debug("dropping listing with negative price", zap.String("id", l.ID))
		case !models.ValidCategory(l.Category):
			c.logger.Debug("dropping listing with unknown category",
				zap.String("id", l.ID), zap.String("category", string(l.Category)))
		default:
			listings = append(listings, l)
		}
	}
	return listings
}
