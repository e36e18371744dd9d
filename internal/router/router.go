// Package router sets up the HTTP routes and middleware chain for the
// bottleshop API server. Every catalog route is registered both at the
// root and under /api, matching the paths the mobile client uses.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bottleshop/internal/handlers"
	"bottleshop/internal/middleware"
)

// Options carries the optional pieces of the route setup.
type Options struct {
	// RateLimiter is applied to all API routes when non-nil.
	RateLimiter *middleware.RateLimiter
	// StaticDir serves product images under /static when non-empty.
	StaticDir string
}

// New creates and returns the configured chi router.
func New(catalog *handlers.Catalog, orders *handlers.Orders, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	r.Get("/health", healthHandler)

	// Catalog routes. The client historically hit both prefixed and
	// unprefixed paths, so both are kept.
	r.Get("/home", catalog.Home)
	r.Get("/api/home", catalog.Home)
	r.Get("/products/{categoryId}", catalog.ProductsByCategory)
	r.Get("/api/products/{categoryId}", catalog.ProductsByCategory)
	r.Get("/api/products/id/{id}", catalog.ProductByID)

	r.Post("/api/orders", orders.Place)

	if opts.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
