package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"listing-directory/internal/listing/repository"
	"listing-directory/pkg/log"
	"listing-directory/pkg/metrics"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 64 << 10

	headerRequestID = "X-Request-ID"
)

// ClientConfig configures the directory HTTP client.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables throttling
	Burst             int
	Metrics           *metrics.Manager
}

// Client is the HTTP wrapper for the directory service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Manager
}

// NewClient creates a new directory HTTP client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		metrics:    cfg.Metrics,
	}
}

// ListListings fetches listings via GET /listings/.
func (c *Client) ListListings(ctx context.Context, q ListQuery) ([]Listing, error) {
	endpoint := c.baseURL + "/listings/"
	if v := q.Values(); len(v) > 0 {
		endpoint += "?" + v.Encode()
	}

	var listings []Listing
	if err := c.do(ctx, "list", http.MethodGet, endpoint, nil, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

// CreateListing creates a listing via POST /listings/.
func (c *Client) CreateListing(ctx context.Context, req CreateListingRequest) (*Listing, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create listing request: %w", err)
	}

	var l Listing
	if err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/listings/", body, &l); err != nil {
		return nil, err
	}
	if l.ID == "" {
		return nil, fmt.Errorf("%w: directory create response has no id", repository.ErrTransport)
	}
	return &l, nil
}

// GetListing fetches a single listing via GET /listings/{id}.
func (c *Client) GetListing(ctx context.Context, id string) (*Listing, error) {
	var l Listing
	if err := c.do(ctx, "get", http.MethodGet, c.listingURL(id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListing deletes a listing via DELETE /listings/{id}. No response body is required.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.listingURL(id), nil, nil)
}

func (c *Client) listingURL(id string) string {
	return c.baseURL + "/listings/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		c.metrics.ObserveDirectory(op, outcome, time.Since(start))
	}()

	if c.limiter != nil {
		if werr := c.limiter.Wait(ctx); werr != nil {
			outcome = metrics.OutcomeTransport
			return fmt.Errorf("%w: directory %s throttled: %w", repository.ErrTransport, op, werr)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return fmt.Errorf("failed to build %s listing request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerRequestID, requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return fmt.Errorf("%w: failed to call directory %s API: %w", repository.ErrTransport, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		outcome = metrics.OutcomeService
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return &repository.ServiceError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(raw),
			Body:       string(raw),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = metrics.OutcomeTransport
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty directory %s response", repository.ErrTransport, op)
		}
		return fmt.Errorf("%w: failed to decode directory %s response: %w", repository.ErrTransport, op, err)
	}
	return nil
}

func requestID(ctx context.Context) string {
	if id := log.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
