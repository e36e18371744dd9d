// Package main is a terminal walkthrough of the shopping flows against a
// running bottleshopd: load the home screen, browse a category, fill the
// cart, search, peek at the profile screens, and sign out. It exercises
// the same client stack the mobile app uses.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"bottleshop/internal/auth"
	"bottleshop/internal/cart"
	"bottleshop/internal/catalog"
	"bottleshop/internal/client"
	"bottleshop/internal/config"
	"bottleshop/internal/profile"
	"bottleshop/internal/shop"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	svc := catalog.NewService(api)

	provider, err := auth.NewMock(map[string]string{
		"demo@bottleshop.test": "password123",
	})
	if err != nil {
		slog.Error("failed to set up auth provider", "error", err)
		os.Exit(1)
	}
	session := shop.NewSession(provider, svc)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Home screen: one payload, then background preloads per category.
	home, err := svc.FetchHome(ctx)
	if err != nil {
		slog.Error("home load failed", "error", err, "base_url", cfg.CatalogBaseURL)
		os.Exit(1)
	}
	slog.Info("home loaded",
		"categories", len(home.Categories),
		"brands", len(home.Brands),
		"limited_editions", len(home.LimitedEditionProducts),
	)

	unsubscribe := session.Cart().Subscribe(func(t cart.Totals) {
		slog.Info("cart updated", "items", t.Items, "total", t.Price)
	})
	defer unsubscribe()

	if len(home.Categories) == 0 {
		slog.Error("catalog has no categories")
		os.Exit(1)
	}

	// Browse the first category and fill the cart.
	first := home.Categories[0]
	products, err := svc.SelectCategory(ctx, first)
	if err != nil {
		slog.Error("category load failed", "error", err, "category", first.Name)
		os.Exit(1)
	}
	slog.Info("category selected", "category", first.Name, "products", len(products))

	if len(products) >= 2 {
		session.Cart().Add(products[0], 1)
		session.Cart().Add(products[1], 2)
		session.Cart().Add(products[0], 1) // merges into the first line
		session.Cart().SetQuantity(products[1].ID, 1)
		session.Cart().Remove(products[1].ID)
	}

	for _, line := range session.Cart().Lines() {
		slog.Info("cart line", "product", line.Product.Name, "quantity", line.Quantity)
	}

	// Give the background preloads a moment, then search the cache.
	time.Sleep(500 * time.Millisecond)
	for _, hit := range svc.Search("rum") {
		slog.Info("search hit", "product", hit.Name, "price", hit.Price)
	}

	// Profile screens are mock data behind simulated latency.
	account := profile.NewService(profile.DefaultLatency)
	addresses, err := account.Addresses(ctx)
	if err != nil {
		slog.Error("addresses load failed", "error", err)
		os.Exit(1)
	}
	for _, a := range addresses {
		slog.Info("address", "label", a.Label, "default", a.Default)
	}

	orders, err := account.OrderHistory(ctx)
	if err != nil {
		slog.Error("order history load failed", "error", err)
		os.Exit(1)
	}
	for _, o := range orders {
		slog.Info("past order", "id", o.OrderID, "total", o.Total, "status", o.Status)
	}

	// Sign in, then out. Signing out empties the cart.
	if _, err := session.SignIn(ctx, "demo@bottleshop.test", "password123"); err != nil {
		slog.Error("sign-in failed", "error", err)
		os.Exit(1)
	}
	session.SignOut()

	totals := session.Cart().Totals()
	slog.Info("demo finished", "cart_items", totals.Items, "cart_total", totals.Price)
}
