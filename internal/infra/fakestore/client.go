package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domcatalog "example.com/storefront/internal/domain/catalog"
)

// DefaultBaseURL points at the public read-only catalog the storefront
// falls back to when it has no owned product data.
const DefaultBaseURL = "https://fakestoreapi.com"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// row is the external catalog's product shape; it has no document id.
type row struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Price       float64           `json:"price"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Image       string            `json:"image"`
	Rating      domcatalog.Rating `json:"rating"`
}

func (r row) product() domcatalog.Product {
	return domcatalog.Product{
		// External rows have no document id; their own id stands in.
		DocID:       strconv.FormatInt(r.ID, 10),
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Rating:      r.Rating,
	}
}

func (c *Client) Products(ctx context.Context) ([]domcatalog.Product, error) {
	var rows []row
	if err := c.getJSON(ctx, "/products", &rows); err != nil {
		return nil, err
	}
	products := make([]domcatalog.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.product())
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]domcatalog.Product, error) {
	var rows []row
	path := "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	products := make([]domcatalog.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, r.product())
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog request %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
