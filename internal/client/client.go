// Package client implements the HTTP catalog client used by the shopping
// frontend. It talks to the bottleshop backend and normalizes the wire
// shapes into the shared model types. The client carries no cache and no
// retry policy; callers decide what to do with failures.
package client

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

	"bottleshop/internal/models"
)

// DefaultTimeout bounds every catalog request end to end.
const DefaultTimeout = 15 * time.Second

// Catalog is an HTTP client for the catalog API.
type Catalog struct {
	baseURL string
	client  *http.Client
}

// New creates a catalog client for the backend at baseURL. A zero
// timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Catalog {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Catalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// HomeData fetches the full home payload (GET /home). Fields missing
// from the response decode to empty collections; unknown fields are
// ignored by encoding/json.
func (c *Catalog) HomeData(ctx context.Context) (models.HomeResponse, error) {
	var home models.HomeResponse

	body, err := c.get(ctx, c.baseURL+"/home")
	if err != nil {
		return home, fmt.Errorf("home request: %w", err)
	}

	if err := json.Unmarshal(body, &home); err != nil {
		return home, fmt.Errorf("home decode: %w", err)
	}
	return home, nil
}

// ProductsByCategory fetches the product list for one category
// (GET /products/{categoryId}). Depending on the backend version the
// response is either a bare JSON array or a {"products": [...]} object;
// both are normalized to a []Product.
func (c *Catalog) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	body, err := c.get(ctx, c.baseURL+"/products/"+url.PathEscape(categoryID))
	if err != nil {
		return nil, fmt.Errorf("products request for category %s: %w", categoryID, err)
	}

	return decodeProducts(body, categoryID)
}

// get performs a GET request and returns the response body, treating any
// non-200 status as an error.
func (c *Catalog) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// decodeProducts accepts both product-list wire shapes and returns a
// plain slice. The shape is sniffed from the first JSON token.
func decodeProducts(body []byte, categoryID string) ([]models.Product, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []models.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, fmt.Errorf("products decode for category %s: %w", categoryID, err)
		}
		return products, nil
	}

	var wrapped struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("products decode for category %s: %w", categoryID, err)
	}
	return wrapped.Products, nil
}
