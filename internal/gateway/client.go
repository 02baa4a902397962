// Package gateway is the client side of the lookup API. It turns a raw
// query into an annotated sentence by calling POST /api/lookup.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"yomu/internal/models"
)

const (
	// DefaultTimeout bounds a single lookup round trip.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a non-2xx body is kept in a ProtocolError.
	maxErrorBody = 512
	maxBody      = 4 << 20
)

type lookupRequest struct {
	Query string `json:"query"`
}

// Client calls the lookup endpoint. It never retries.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the lookup endpoint at url.
// A zero timeout uses DefaultTimeout.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gateway"),
	}
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Lookup submits query and decodes the response into a Sentence.
// Errors are *TransportError, *ProtocolError or *DecodeError.
func (c *Client) Lookup(ctx context.Context, query string) (models.Sentence, error) {
	payload, err := json.Marshal(lookupRequest{Query: query})
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "lookup request", slog.String("query", query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "lookup request failed", slog.String("error", err.Error()))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "lookup rejected", slog.Int("status", resp.StatusCode))
		return nil, &ProtocolError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	sentence, err := models.DecodeSentence(body)
	if err != nil {
		c.log.WarnContext(ctx, "lookup response invalid", slog.String("error", err.Error()))
		return nil, &DecodeError{Err: err}
	}

	c.log.DebugContext(ctx, "lookup response",
		slog.Int("status", resp.StatusCode),
		slog.Int("words", sentence.Len()),
	)
	return sentence, nil
}
