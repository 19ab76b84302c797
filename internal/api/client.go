// Package api reads the shop catalog from the remote JSON/HTTP data API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"github.com/nikolayk812/ceramics-cart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	currency   currency.Unit
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout applies to a copy of the HTTP client, the caller's client is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCurrency sets the currency of prices returned by the API, USD by default.
func WithCurrency(cur currency.Unit) Option {
	return func(c *Client) {
		c.currency = cur
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) (port.ProductSource, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		currency:   currency.USD,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		return nil, fmt.Errorf("httpClient is nil")
	}

	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c, nil
}

type productDTO struct {
	ID          string          `json:"idProduct"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type categoryDTO struct {
	ID   string `json:"idCategory"`
	Name string `json:"name"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.get(ctx, "/products", &dtos); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, c.mapProductToDomain(d))
	}

	return products, nil
}

// GetProduct returns a *StatusError with http.StatusNotFound for unknown ids.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var dto productDTO
	if err := c.get(ctx, "/products/"+url.PathEscape(id), &dto); err != nil {
		return domain.Product{}, fmt.Errorf("c.get: %w", err)
	}

	return c.mapProductToDomain(dto), nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var dtos []categoryDTO
	if err := c.get(ctx, "/categories", &dtos); err != nil {
		return nil, fmt.Errorf("c.get: %w", err)
	}

	categories := make([]domain.Category, 0, len(dtos))
	for _, d := range dtos {
		categories = append(categories, domain.Category{ID: d.ID, Name: d.Name})
	}

	return categories, nil
}

func (c *Client) mapProductToDomain(d productDTO) domain.Product {
	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       domain.Money{Amount: d.Price, Currency: c.currency},
		Stock:       d.Stock,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.logger.Debug("api request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
