// Package catalog implements the client-side catalog service: a
// process-long in-memory cache of per-category product lists plus the
// preload and selection flows that fill it. The cache is write-once per
// category — a successfully fetched category is never re-fetched for the
// life of the service.
package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"bottleshop/internal/models"
)

// Client is the fetch contract the service depends on. The HTTP
// implementation lives in internal/client; tests substitute fakes.
type Client interface {
	HomeData(ctx context.Context) (models.HomeResponse, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
}

// Service owns the preloaded-category set and the cached product lists.
//
// Concurrent preloads of the same unseen category may both fetch: map
// writes are last-write-wins and marking a category preloaded twice is
// harmless. The mutex guards the maps, not the fetches.
type Service struct {
	client Client

	mu        sync.RWMutex
	preloaded map[string]struct{}
	products  map[string][]models.Product
}

// NewService creates an empty catalog service on top of client.
func NewService(client Client) *Service {
	return &Service{
		client:    client,
		preloaded: make(map[string]struct{}),
		products:  make(map[string][]models.Product),
	}
}

// FetchHome fetches the home payload and kicks off a background preload
// for every category it lists. It does not wait for the preloads; the
// payload is returned as soon as it arrives. Preloads outlive ctx on
// purpose — the cache is shared, so a fetch finishing after the caller
// has moved on still pays off.
func (s *Service) FetchHome(ctx context.Context) (models.HomeResponse, error) {
	home, err := s.client.HomeData(ctx)
	if err != nil {
		return models.HomeResponse{}, err
	}

	for _, category := range home.Categories {
		go s.Preload(context.WithoutCancel(ctx), category)
	}

	return home, nil
}

// Preload fetches and caches the product list for category unless it is
// already preloaded. Preloading is best-effort: a fetch failure is
// logged and swallowed, leaving the category unmarked so a later call
// retries. At most one successful fetch ever happens per category.
func (s *Service) Preload(ctx context.Context, category models.Category) {
	if s.IsPreloaded(category) {
		return
	}

	products, err := s.client.ProductsByCategory(ctx, category.ID)
	if err != nil {
		slog.Warn("category preload failed", "category", category.ID, "error", err)
		return
	}

	s.store(category.ID, products)
}

// IsPreloaded reports whether category's products are cached.
func (s *Service) IsPreloaded(category models.Category) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.preloaded[category.ID]
	return ok
}

// CategoryProducts returns the cached product list for categoryID, or an
// empty slice if the category was never successfully preloaded. It never
// triggers a fetch.
func (s *Service) CategoryProducts(categoryID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cached := s.products[categoryID]
	out := make([]models.Product, len(cached))
	copy(out, cached)
	return out
}

// SelectCategory is the on-demand path used when the user navigates into
// a category. If the category is already preloaded it serves straight
// from the cache; otherwise it fetches synchronously and, unlike
// Preload, surfaces the fetch error to the caller.
func (s *Service) SelectCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	if !s.IsPreloaded(category) {
		products, err := s.client.ProductsByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		s.store(category.ID, products)
	}

	return s.CategoryProducts(category.ID), nil
}

// Search returns all cached products whose name or description contains
// query, case-insensitively. It searches only what is already cached and
// never fetches. Results are ordered by category ID, then cache order.
func (s *Service) Search(query string) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []models.Product
	for _, id := range ids {
		for _, p := range s.products[id] {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Description), query) {
				out = append(out, p)
			}
		}
	}
	return out
}

// store caches a fetched product list and marks the category preloaded.
func (s *Service) store(categoryID string, products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[categoryID] = products
	s.preloaded[categoryID] = struct{}{}
}
