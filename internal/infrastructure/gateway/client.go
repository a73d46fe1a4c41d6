package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/internal/config"
)

// Client is the JSON-over-HTTP client for the remote data gateway that owns
// blood requests, appointments, notifications and user records.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a gateway client from configuration.
func NewClient(cfg config.GatewayConfig) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("gateway base url is empty")
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}, nil
}

// Get performs a GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch performs a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Ping checks gateway reachability for the connection monitor.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "encode gateway payload", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "build gateway request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "data gateway unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "decode gateway response", err)
	}
	return nil
}

func statusError(status int, method, path string) error {
	msg := fmt.Sprintf("gateway %s %s returned %d", method, path, status)
	switch {
	case status == http.StatusNotFound:
		return domain.NewError(domain.ErrCodeNotFound, msg)
	case status == http.StatusUnauthorized:
		return domain.NewError(domain.ErrCodeUnauthorized, msg)
	case status == http.StatusForbidden:
		return domain.NewError(domain.ErrCodeForbidden, msg)
	case status == http.StatusConflict:
		return domain.NewError(domain.ErrCodeConflict, msg)
	case status >= 400 && status < 500:
		return domain.NewError(domain.ErrCodeInvalid, msg)
	default:
		return domain.NewError(domain.ErrCodeUnavailable, msg)
	}
}
