// Package store provides the PostgreSQL-backed catalog source. It serves
// the same payloads as the fixture catalog, read from the seeded tables.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"bottleshop/internal/models"
)

// CatalogStore reads catalog data from PostgreSQL. Image URLs are stored
// as relative paths and resolved against imageBase on the way out, so a
// deployment can move its image hosting without touching rows.
type CatalogStore struct {
	db        *sql.DB
	imageBase string
}

// NewCatalogStore returns a catalog store reading from db.
func NewCatalogStore(db *sql.DB, imageBase string) *CatalogStore {
	return &CatalogStore{db: db, imageBase: strings.TrimRight(imageBase, "/")}
}

const productColumns = `id, name, description, price, image_url, category_id, in_stock, rating, review_count`

// scanProduct scans a product row.
func (s *CatalogStore) scanProduct(scanner interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.CategoryID, &p.InStock, &p.Rating, &p.ReviewCount,
	)
	if err != nil {
		return p, err
	}
	p.ImageURL = s.resolve(p.ImageURL)
	return p, nil
}

// Home assembles the full home payload from the catalog tables.
func (s *CatalogStore) Home(ctx context.Context) (models.HomeResponse, error) {
	var home models.HomeResponse

	categories, err := s.Categories(ctx)
	if err != nil {
		return home, err
	}
	home.Categories = categories

	home.Brands, err = s.brands(ctx)
	if err != nil {
		return home, err
	}

	home.Banners, err = s.banners(ctx)
	if err != nil {
		return home, err
	}

	home.LimitedEditionProducts, err = s.limitedEditions(ctx)
	if err != nil {
		return home, err
	}

	home.CategoryProducts = make(map[string][]models.Product, len(categories))
	for _, c := range categories {
		products, err := s.ProductsByCategory(ctx, c.ID)
		if err != nil {
			return home, err
		}
		home.CategoryProducts[c.ID] = products
	}

	return home, nil
}

// Categories returns all categories in display order.
func (s *CatalogStore) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image_url FROM categories ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ImageURL = s.resolve(c.ImageURL)
		items = append(items, c)
	}
	return items, rows.Err()
}

// ProductsByCategory returns the non-limited products of one category in
// display order. Unknown categories yield an empty list, not an error.
func (s *CatalogStore) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE category_id = $1 AND NOT is_limited_edition
		ORDER BY sort_order, id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products for category %s: %w", categoryID, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := s.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ProductByID retrieves one product by ID. Returns nil when not found.
func (s *CatalogStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1
	`, id)
	p, err := s.scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

// limitedEditions returns the limited-edition products in display order.
func (s *CatalogStore) limitedEditions(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE is_limited_edition
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list limited editions: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := s.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan limited edition: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// brands returns all brands in display order.
func (s *CatalogStore) brands(ctx context.Context) ([]models.Brand, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image_url FROM brands ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var items []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.ImageURL); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		b.ImageURL = s.resolve(b.ImageURL)
		items = append(items, b)
	}
	return items, rows.Err()
}

// banners returns all banners in display order.
func (s *CatalogStore) banners(ctx context.Context) ([]models.Banner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, image_url, target_url FROM banners ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	var items []models.Banner
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.ImageURL, &b.TargetURL); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		b.ImageURL = s.resolve(b.ImageURL)
		items = append(items, b)
	}
	return items, rows.Err()
}

// resolve prefixes a stored relative image path with the image base.
// Already-absolute URLs pass through untouched.
func (s *CatalogStore) resolve(imageURL string) string {
	if imageURL == "" || strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	return s.imageBase + imageURL
}
