// Package backend is the typed client of the APRiority backend HTTP API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apriority/miniapp/internal/model"
)

var (
	// ErrNotFound is returned when the backend responds with 404.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when the backend refuses a comment because the
	// wallet holds no NFT of the collection.
	ErrNotOwner = errors.New("wallet holds no NFT from this collection")
)

// maxErrorBody limits how much of an error response is kept for logging.
const maxErrorBody = 512

// StatusError is a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is lets errors.Is match ErrNotFound and ErrNotOwner by status code.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrNotOwner:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Client calls the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.http.Timeout = d
	}
}

// New creates a backend client for the given origin.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListCollections returns all listed collections.
func (c *Client) ListCollections(ctx context.Context) ([]model.CollectionData, error) {
	var out []model.CollectionData
	if err := c.do(ctx, http.MethodGet, "/api/v1/collections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCollection returns one collection with its yield figures.
func (c *Client) GetCollection(ctx context.Context, address string) (*model.CollectionData, error) {
	var out model.CollectionData
	if err := c.do(ctx, http.MethodGet, "/api/v1/collection/"+url.PathEscape(address), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPaymentHistory returns the reward payouts of a collection.
func (c *Client) GetPaymentHistory(ctx context.Context, address string) ([]model.Payment, error) {
	path := "/api/v1/collection/" + url.PathEscape(address) + "/payment_history"

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	// The backend answers [] when there is no history and {"history": [...]} otherwise.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '[' {
		var list []model.Payment
		if len(trimmed) > 0 {
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("decode payment history: %w", err)
			}
		}
		return list, nil
	}

	var ph model.PaymentHistory
	if err := json.Unmarshal(trimmed, &ph); err != nil {
		return nil, fmt.Errorf("decode payment history: %w", err)
	}
	return ph.History, nil
}

// ListComments returns the comments left on a collection.
func (c *Client) ListComments(ctx context.Context, address string) ([]model.Comment, error) {
	var out []model.Comment
	if err := c.do(ctx, http.MethodGet, "/api/v1/collection/"+url.PathEscape(address)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckOwnership reports whether wallet holds an NFT of the collection.
func (c *Client) CheckOwnership(ctx context.Context, address, wallet string) (bool, error) {
	path := "/api/v1/collection/" + url.PathEscape(address) + "/ownership/" + url.PathEscape(wallet)
	var owns bool
	if err := c.do(ctx, http.MethodGet, path, nil, &owns); err != nil {
		return false, err
	}
	return owns, nil
}

// AddComment publishes a comment on a collection.
func (c *Client) AddComment(ctx context.Context, address string, comment model.NewComment) error {
	return c.do(ctx, http.MethodPut, "/api/v1/collection/"+url.PathEscape(address)+"/comments", comment, nil)
}

// Calculate estimates APR and payback period for arbitrary reward terms.
func (c *Client) Calculate(ctx context.Context, req model.CalculatorRequest) (*model.CalculatorResult, error) {
	var out model.CalculatorResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/calculator", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitListing files a listing request.
func (c *Client) SubmitListing(ctx context.Context, req model.ListingRequest) (*model.ListingResult, error) {
	var out model.ListingResult
	if err := c.do(ctx, http.MethodPut, "/api/v1/listing", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	slog.Debug("backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
