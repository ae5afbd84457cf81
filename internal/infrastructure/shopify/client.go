package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storepanel/internal/domain/entity"
	"storepanel/internal/domain/repository"
	"storepanel/internal/infrastructure/ratelimit"
)

// Client talks to the Shopify Admin REST API. Every call carries the shop's
// access token; the OAuth handshake that produced the token happens outside
// this service. One Client is reused across all calls of a request chain.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *ratelimit.TokenBucket
}

type Config struct {
	ShopDomain string // e.g. "example.myshopify.com"
	Token      string
	APIVersion string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ShopDomain == "" {
		return nil, fmt.Errorf("shop domain is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("admin token is required")
	}
	version := cfg.APIVersion
	if version == "" {
		version = "2024-01"
	}

	base := cfg.ShopDomain
	if !strings.HasPrefix(base, "http") {
		base = "https://" + base
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("%s/admin/api/%s", strings.TrimSuffix(base, "/"), version),
		token:      cfg.Token,
		limiter:    ratelimit.NewAdminAPIBucket(),
	}, nil
}

// NewClientWithBase is used by tests to point the client at a local server.
func NewClientWithBase(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		limiter:    ratelimit.NewAdminAPIBucket(),
	}
}

func (c *Client) GetProducts(ctx context.Context) ([]entity.Product, error) {
	var out struct {
		Products []entity.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "products.json", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, payload repository.ProductPayload) (*entity.Product, error) {
	body := map[string]interface{}{"product": payload}
	var out struct {
		Product entity.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "products.json", body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, payload repository.ProductPayload) (*entity.Product, error) {
	body := map[string]interface{}{"product": payload}
	var out struct {
		Product entity.Product `json:"product"`
	}
	path := fmt.Sprintf("products/%d.json", id)
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("products/%d.json", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) SaveVariant(ctx context.Context, variant *entity.Variant, update bool) (*entity.Variant, error) {
	body := map[string]interface{}{"variant": variant}
	var out struct {
		Variant entity.Variant `json:"variant"`
	}

	var method, path string
	if update {
		method = http.MethodPut
		path = fmt.Sprintf("variants/%d.json", variant.ID)
	} else {
		method = http.MethodPost
		path = fmt.Sprintf("products/%d/variants.json", variant.ProductID)
	}

	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Variant, nil
}

func (c *Client) SaveImage(ctx context.Context, image *entity.Image, update bool) (*entity.Image, error) {
	body := map[string]interface{}{"image": image}
	var out struct {
		Image entity.Image `json:"image"`
	}

	var method, path string
	if update {
		method = http.MethodPut
		path = fmt.Sprintf("products/%d/images/%d.json", image.ProductID, image.ID)
	} else {
		method = http.MethodPost
		path = fmt.Sprintf("products/%d/images.json", image.ProductID)
	}

	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Image, nil
}

// do executes one authenticated call and decodes the JSON response into out.
// Non-2xx responses are turned into errors carrying the platform's own error
// body, which is the only failure detail the panel ever gets.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, platformError(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
		}
	}

	return nil
}

// platformError extracts the "errors" field the platform returns on failed
// calls, falling back to the raw body.
func platformError(raw []byte) string {
	var parsed struct {
		Errors interface{} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Errors != nil {
		return fmt.Sprintf("%v", parsed.Errors)
	}
	if len(raw) > 512 {
		raw = raw[:512]
	}
	return string(raw)
}
