// Package handlers implements the HTTP handlers for the bottleshop
// catalog API.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bottleshop/internal/cache"
	"bottleshop/internal/models"
)

// CatalogSource provides the catalog data served by the API. It is
// implemented by both the Postgres-backed store and the in-memory
// fixture catalog.
type CatalogSource interface {
	Home(ctx context.Context) (models.HomeResponse, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// Catalog groups the read-only catalog handlers. homeCache may be nil
// when Valkey is not configured; handlers then serve straight from the
// source on every request.
type Catalog struct {
	source    CatalogSource
	homeCache *cache.HomeCache
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(source CatalogSource, homeCache *cache.HomeCache) *Catalog {
	return &Catalog{source: source, homeCache: homeCache}
}

// productsResponse wraps a product list the way the mobile client
// expects it.
type productsResponse struct {
	Products []models.Product `json:"products"`
}

// Home serves the aggregated home screen payload: categories, limited
// editions, brands, banners, and the per-category product map.
func (c *Catalog) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if c.homeCache != nil {
		if cached, ok := c.homeCache.Get(ctx); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	home, err := c.source.Home(ctx)
	if err != nil {
		slog.Error("load home payload failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(home)
	if err != nil {
		slog.Error("encode home payload failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if c.homeCache != nil {
		c.homeCache.Set(ctx, payload)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(payload)
}

// ProductsByCategory serves the products of one category wrapped in a
// {"products": [...]} object.
func (c *Catalog) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	products, err := c.source.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("load category products failed", "error", err, "category", categoryID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, productsResponse{Products: products})
}

// ProductByID serves a single product, or 404 if the id is unknown.
func (c *Catalog) ProductByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := c.source.ProductByID(r.Context(), id)
	if err != nil {
		slog.Error("load product failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// writeJSON encodes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
