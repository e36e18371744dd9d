// Package shop ties the client-side pieces of the demo app together:
// the identity provider, the cart ledger, and the catalog service share
// one Session the way the app screens share their singletons.
package shop

import (
	"context"
	"log/slog"

	"bottleshop/internal/auth"
	"bottleshop/internal/cart"
	"bottleshop/internal/catalog"
)

// Session is the per-app shopping session.
type Session struct {
	provider auth.Provider
	cart     *cart.Ledger
	catalog  *catalog.Service
}

// NewSession creates a session over the given provider and catalog
// service, with a fresh empty cart.
func NewSession(provider auth.Provider, svc *catalog.Service) *Session {
	return &Session{
		provider: provider,
		cart:     cart.NewLedger(),
		catalog:  svc,
	}
}

// Cart returns the session's cart ledger.
func (s *Session) Cart() *cart.Ledger {
	return s.cart
}

// Catalog returns the session's catalog service.
func (s *Session) Catalog() *catalog.Service {
	return s.catalog
}

// CurrentUser returns the signed-in user, or nil.
func (s *Session) CurrentUser() *auth.User {
	return s.provider.CurrentUser()
}

// SignIn authenticates against the provider. The cart is kept: guests
// can fill a cart before signing in.
func (s *Session) SignIn(ctx context.Context, email, password string) (*auth.User, error) {
	user, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	slog.Info("user signed in", "email", user.Email)
	return user, nil
}

// SignOut ends the session and empties the cart, so the next user never
// inherits someone else's items.
func (s *Session) SignOut() {
	s.provider.SignOut()
	s.cart.Clear()
	slog.Info("user signed out")
}
