package shop

import (
	"context"
	"testing"

	"bottleshop/internal/auth"
	"bottleshop/internal/catalog"
	"bottleshop/internal/models"
)

// staticClient serves fixed catalog data without a network.
type staticClient struct{}

func (staticClient) HomeData(ctx context.Context) (models.HomeResponse, error) {
	return models.HomeResponse{}, nil
}

func (staticClient) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return []models.Product{}, nil
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	provider, err := auth.NewMock(map[string]string{"demo@bottleshop.test": "password123"})
	if err != nil {
		t.Fatalf("NewMock: %v", err)
	}
	return NewSession(provider, catalog.NewService(staticClient{}))
}

func TestSignInKeepsGuestCart(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	// A guest fills the cart before signing in.
	s.Cart().Add(models.Product{ID: "w1", Name: "Cabernet Sauvignon", Price: 24.99}, 2)

	if _, err := s.SignIn(ctx, "demo@bottleshop.test", "password123"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	if got := s.Cart().Totals().Items; got != 2 {
		t.Errorf("cart items after sign-in: got %d, want 2", got)
	}
	if s.CurrentUser() == nil {
		t.Error("CurrentUser should be set after sign-in")
	}
}

func TestSignInFailureLeavesSessionSignedOut(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.SignIn(context.Background(), "demo@bottleshop.test", "wrong"); err == nil {
		t.Fatal("SignIn should fail with a wrong password")
	}
	if s.CurrentUser() != nil {
		t.Error("CurrentUser should be nil after a failed sign-in")
	}
}

func TestSignOutClearsCart(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	if _, err := s.SignIn(ctx, "demo@bottleshop.test", "password123"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	s.Cart().Add(models.Product{ID: "b1", Name: "Corona Extra", Price: 8.99}, 3)

	s.SignOut()

	if s.CurrentUser() != nil {
		t.Error("CurrentUser should be nil after sign-out")
	}
	totals := s.Cart().Totals()
	if totals.Items != 0 || totals.Price != 0 {
		t.Errorf("cart should be empty after sign-out, got %+v", totals)
	}
}
