package ppt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production vendor endpoint.
const DefaultBaseURL = "https://www.pokemonpricetracker.com/api/v2"

// DefaultTimeout is the hard per-request timeout on the request path. A
// user is waiting on the other end, so there is no retry at this layer.
const DefaultTimeout = 30 * time.Second

// Prometheus metrics for vendor API operations.
var (
	vendorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tcg_vendor_requests_total",
		Help: "Total vendor API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	vendorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tcg_vendor_request_duration_seconds",
		Help:    "Vendor API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"endpoint"})
)

// Config holds the client configuration.
type Config struct {
	// BaseURL of the vendor API. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey is sent as a bearer token when present. An empty key still
	// attempts the call on the vendor's public tier.
	APIKey string

	// Timeout per request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client talks to the vendor pricing API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// New creates a vendor API client.
func New(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With().Str("component", "ppt-client").Logger(),
	}
}

// FetchCards performs a card search.
func (c *Client) FetchCards(ctx context.Context, q CardQuery) (*CardsResponse, error) {
	var resp CardsResponse
	if err := c.getJSON(ctx, "/cards", q.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchCardByID looks up a single card by its vendor id.
//
// The vendor returns data as an object for single-card lookups and as an
// array for searches, so the payload is decoded both ways. Returns
// ErrNotFound when the id matches nothing.
func (c *Client) FetchCardByID(ctx context.Context, id string) (*Card, error) {
	params := url.Values{}
	params.Set("tcgPlayerId", id)
	params.Set("includeHistory", "true")
	params.Set("days", strconv.Itoa(historyDays))

	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.getJSON(ctx, "/cards", params, &raw); err != nil {
		return nil, err
	}
	if len(raw.Data) == 0 {
		return nil, ErrNotFound
	}

	var cards []Card
	if err := json.Unmarshal(raw.Data, &cards); err == nil {
		if len(cards) == 0 {
			return nil, ErrNotFound
		}
		return &cards[0], nil
	}

	var card Card
	if err := json.Unmarshal(raw.Data, &card); err != nil {
		return nil, fmt.Errorf("decode card payload: %w", err)
	}
	if card.TCGPlayerID == "" && card.ID == "" {
		return nil, ErrNotFound
	}
	return &card, nil
}

// FetchSets retrieves the full set catalog. The vendor list is small enough
// that a single page covers it.
func (c *Client) FetchSets(ctx context.Context, limit int) (*SetsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var resp SetsResponse
	if err := c.getJSON(ctx, "/sets", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// getJSON performs a single GET attempt and decodes the response body.
// Non-2xx statuses become an *APIError; the body is drained but its content
// is not propagated beyond logs.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, v any) error {
	start := time.Now()
	defer func() {
		vendorRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		vendorRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Vendor request failed")
		return fmt.Errorf("vendor request: %w", err)
	}
	defer resp.Body.Close()

	vendorRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Bytes("body", body).
			Msg("Vendor request error")
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode vendor response: %w", err)
	}
	return nil
}
