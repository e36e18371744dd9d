package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"bottleshop/internal/fixture"
)

// Seed populates the catalog tables from the built-in fixture data.
// It is idempotent: if any category exists the seed is skipped, so the
// server can run Migrate+Seed on every start. Image URLs are stored as
// paths relative to the configured image base.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded, skipping")
		return nil
	}

	home := fixture.Home()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, c := range home.Categories {
		_, err := tx.Exec(`
			INSERT INTO categories (id, name, image_url, sort_order)
			VALUES ($1, $2, $3, $4)
		`, c.ID, c.Name, c.ImageURL, i)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}

	for i, b := range home.Brands {
		_, err := tx.Exec(`
			INSERT INTO brands (id, name, image_url, sort_order)
			VALUES ($1, $2, $3, $4)
		`, b.ID, b.Name, b.ImageURL, i)
		if err != nil {
			return fmt.Errorf("seed brand %s: %w", b.ID, err)
		}
	}

	for i, b := range home.Banners {
		_, err := tx.Exec(`
			INSERT INTO banners (id, image_url, target_url, sort_order)
			VALUES ($1, $2, $3, $4)
		`, b.ID, b.ImageURL, b.TargetURL, i)
		if err != nil {
			return fmt.Errorf("seed banner %s: %w", b.ID, err)
		}
	}

	insertProduct := func(p productRow) error {
		_, err := tx.Exec(`
			INSERT INTO products
				(id, name, description, price, image_url, category_id,
				 in_stock, rating, review_count, is_limited_edition, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.id, p.name, p.description, p.price, p.imageURL, p.categoryID,
			p.inStock, p.rating, p.reviewCount, p.limited, p.sortOrder)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.id, err)
		}
		return nil
	}

	for _, c := range home.Categories {
		for i, p := range home.CategoryProducts[c.ID] {
			err := insertProduct(productRow{
				id: p.ID, name: p.Name, description: p.Description,
				price: p.Price, imageURL: p.ImageURL, categoryID: p.CategoryID,
				inStock: p.InStock, rating: p.Rating, reviewCount: p.ReviewCount,
				sortOrder: i,
			})
			if err != nil {
				return err
			}
		}
	}

	for i, p := range home.LimitedEditionProducts {
		err := insertProduct(productRow{
			id: p.ID, name: p.Name, description: p.Description,
			price: p.Price, imageURL: p.ImageURL, categoryID: p.CategoryID,
			inStock: p.InStock, rating: p.Rating, reviewCount: p.ReviewCount,
			limited: true, sortOrder: i,
		})
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("catalog seeded",
		"categories", len(home.Categories),
		"brands", len(home.Brands),
		"limited_edition", len(home.LimitedEditionProducts),
	)
	return nil
}

// productRow flattens a product insert so category and limited-edition
// products share one code path.
type productRow struct {
	id, name, description string
	price                 float64
	imageURL, categoryID  string
	inStock               bool
	rating                float64
	reviewCount           int
	limited               bool
	sortOrder             int
}
