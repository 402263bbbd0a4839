package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wooldev/trolley-api/internal/obs"
	"github.com/wooldev/trolley-api/internal/resilience"
)

// Error reports a non-success response from the resource service.
type Error struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("resource: %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Product is a catalog entry as returned by the resource service.
type Product struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ShopperHistory is one customer's purchase record.
type ShopperHistory struct {
	CustomerID int64     `json:"customerId"`
	Products   []Product `json:"products"`
}

// Client talks to the upstream resource service. All endpoints authenticate
// via a token query parameter.
type Client struct {
	BaseURL string
	Token   string
	HTTP    resilience.HTTPClient
	Logger  zerolog.Logger
}

// Products fetches the product catalog.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShopperHistory fetches purchase histories for all customers.
func (c *Client) ShopperHistory(ctx context.Context) ([]ShopperHistory, error) {
	var out []ShopperHistory
	if err := c.getJSON(ctx, "shopperHistory", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrolleyTotal submits a trolley to the remote calculator and returns the
// computed total. The service responds with a bare JSON number.
func (c *Client) TrolleyTotal(ctx context.Context, payload any) (decimal.Decimal, error) {
	const op = "trolleyCalculator"
	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("resource: encode trolley payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(op), bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("resource: build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	raw, err := c.execute(ctx, op, req)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := decimal.NewFromString(strings.TrimSpace(string(raw)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("resource: parse %s response %q: %w", op, raw, err)
	}
	return total, nil
}

func (c *Client) getJSON(ctx context.Context, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(op), nil)
	if err != nil {
		return fmt.Errorf("resource: build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	raw, err := c.execute(ctx, op, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("resource: decode %s response: %w", op, err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, op string, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		obs.RecordResourceRequest(op, "error", time.Since(start))
		return nil, fmt.Errorf("resource: %s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		obs.RecordResourceRequest(op, "error", time.Since(start))
		return nil, fmt.Errorf("resource: read %s response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		obs.RecordResourceRequest(op, "upstream_error", time.Since(start))
		c.Logger.Warn().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Msg("resource request failed")
		return nil, &Error{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	obs.RecordResourceRequest(op, "ok", time.Since(start))
	c.Logger.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("resource request completed")
	return raw, nil
}

func (c *Client) endpoint(op string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	query := url.Values{}
	if c.Token != "" {
		query.Set("token", c.Token)
	}
	endpoint := base + "/api/resource/" + op
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}
