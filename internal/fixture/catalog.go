// Package fixture holds the built-in demo catalog. It backs the API when
// no database is configured and provides the seed data when one is.
// Image URLs are stored as paths relative to the configured image base.
package fixture

import (
	"context"
	"strings"

	"bottleshop/internal/models"
)

// Catalog is an in-memory catalog source serving the fixed demo data.
type Catalog struct {
	home models.HomeResponse
}

// New builds the fixture catalog with every image path resolved against
// imageBase (e.g. "http://localhost:8081/static" or a public bucket URL).
func New(imageBase string) *Catalog {
	imageBase = strings.TrimRight(imageBase, "/")
	home := Home()

	for i := range home.Categories {
		home.Categories[i].ImageURL = imageBase + home.Categories[i].ImageURL
	}
	for i := range home.Brands {
		home.Brands[i].ImageURL = imageBase + home.Brands[i].ImageURL
	}
	for i := range home.Banners {
		home.Banners[i].ImageURL = imageBase + home.Banners[i].ImageURL
	}
	for i := range home.LimitedEditionProducts {
		home.LimitedEditionProducts[i].ImageURL = imageBase + home.LimitedEditionProducts[i].ImageURL
	}
	for id, products := range home.CategoryProducts {
		for i := range products {
			products[i].ImageURL = imageBase + products[i].ImageURL
		}
		home.CategoryProducts[id] = products
	}

	return &Catalog{home: home}
}

// Home returns the full home payload.
func (c *Catalog) Home(ctx context.Context) (models.HomeResponse, error) {
	return c.home, nil
}

// ProductsByCategory returns the fixed product list for categoryID, or
// an empty list for unknown categories.
func (c *Catalog) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	products, ok := c.home.CategoryProducts[categoryID]
	if !ok {
		return []models.Product{}, nil
	}
	return products, nil
}

// ProductByID looks a product up across all category lists and the
// limited editions. Returns nil when not found.
func (c *Catalog) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	for _, products := range c.home.CategoryProducts {
		for _, p := range products {
			if p.ID == id {
				return &p, nil
			}
		}
	}
	for _, p := range c.home.LimitedEditionProducts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// Home returns the raw demo dataset with relative image paths.
// Five categories with three products each, plus brands, one banner and
// five limited-edition products.
func Home() models.HomeResponse {
	return models.HomeResponse{
		Categories: []models.Category{
			{ID: "1", Name: "Wine", ImageURL: "/images/wine.png"},
			{ID: "2", Name: "Beer", ImageURL: "/images/beer.png"},
			{ID: "3", Name: "Whiskey", ImageURL: "/images/whiskey.png"},
			{ID: "4", Name: "Vodka", ImageURL: "/images/vodka.png"},
			{ID: "5", Name: "Rum", ImageURL: "/images/rum.png"},
		},
		Brands: []models.Brand{
			{ID: "1", Name: "Jim Beam", ImageURL: "/images/brands/JimBeam.png"},
			{ID: "2", Name: "Smirnoff", ImageURL: "/images/brands/Smirnoff.png"},
			{ID: "3", Name: "Corona", ImageURL: "/images/brands/corona.png"},
			{ID: "4", Name: "BlueZone", ImageURL: "/images/brands/BlueZone.png"},
			{ID: "5", Name: "Kingfisher", ImageURL: "/images/brands/Kingfisher.png"},
			{ID: "6", Name: "McDowell's", ImageURL: "/images/brands/McDowells.png"},
			{ID: "7", Name: "RedBull", ImageURL: "/images/brands/RedBull.png"},
			{ID: "8", Name: "Bacardi", ImageURL: "/images/brands/Bacardi.png"},
		},
		Banners: []models.Banner{
			{ID: "1", ImageURL: "/images/alcoholbanner.png", TargetURL: "https://example.com/promo1"},
		},
		LimitedEditionProducts: []models.Product{
			{ID: "le1", Name: "Johnnie Walker Blue Label", Description: "Limited Edition Whiskey", Price: 35.99, ImageURL: "/images/limited/Jonniewalker.png", CategoryID: "3", InStock: true, Rating: 4.5, ReviewCount: 128},
			{ID: "le2", Name: "Black Label Reserve", Description: "Special Release", Price: 29.99, ImageURL: "/images/limited/blacklabel.png", CategoryID: "3", InStock: true, Rating: 4.3, ReviewCount: 98},
			{ID: "le3", Name: "Bacardi Gold Reserve", Description: "Limited Edition Rum", Price: 45.99, ImageURL: "/images/limited/bacardi-gold.png", CategoryID: "5", InStock: true, Rating: 4.7, ReviewCount: 156},
			{ID: "le4", Name: "Taylor's Vintage Port", Description: "Collector's Edition", Price: 89.99, ImageURL: "/images/limited/taylors-vintage.png", CategoryID: "1", InStock: true, Rating: 4.8, ReviewCount: 78},
			{ID: "le5", Name: "Crystal Head Vodka", Description: "Aurora Special Edition", Price: 65.99, ImageURL: "/images/limited/crystal-head.png", CategoryID: "4", InStock: true, Rating: 4.6, ReviewCount: 112},
		},
		CategoryProducts: map[string][]models.Product{
			"1": {
				{ID: "w1", Name: "Cabernet Sauvignon", Description: "Rich, full-bodied red wine", Price: 24.99, ImageURL: "/images/wine/cabernet.png", CategoryID: "1", InStock: true, Rating: 4.4, ReviewCount: 89},
				{ID: "w2", Name: "Chardonnay", Description: "Classic white wine", Price: 19.99, ImageURL: "/images/wine/chardonnay.png", CategoryID: "1", InStock: true, Rating: 4.2, ReviewCount: 76},
				{ID: "w3", Name: "Merlot", Description: "Smooth red wine", Price: 22.99, ImageURL: "/images/wine/merlot.png", CategoryID: "1", InStock: true, Rating: 4.3, ReviewCount: 92},
			},
			"2": {
				{ID: "b1", Name: "Corona Extra", Description: "Mexican pale lager", Price: 8.99, ImageURL: "/images/beer/corona.png", CategoryID: "2", InStock: true, Rating: 4.5, ReviewCount: 156},
				{ID: "b2", Name: "Heineken", Description: "Premium lager beer", Price: 9.99, ImageURL: "/images/beer/heineken.png", CategoryID: "2", InStock: true, Rating: 4.4, ReviewCount: 143},
				{ID: "b3", Name: "Budweiser", Description: "American-style lager", Price: 7.99, ImageURL: "/images/beer/budweiser.png", CategoryID: "2", InStock: true, Rating: 4.3, ReviewCount: 178},
			},
			"3": {
				{ID: "wh1", Name: "Jack Daniel's", Description: "Tennessee whiskey", Price: 29.99, ImageURL: "/images/whiskey/jackdaniels.png", CategoryID: "3", InStock: true, Rating: 4.6, ReviewCount: 234},
				{ID: "wh2", Name: "Jameson", Description: "Irish whiskey", Price: 27.99, ImageURL: "/images/whiskey/jameson.png", CategoryID: "3", InStock: true, Rating: 4.5, ReviewCount: 198},
				{ID: "wh3", Name: "Glenfiddich", Description: "Single malt scotch", Price: 45.99, ImageURL: "/images/whiskey/glenfiddich.png", CategoryID: "3", InStock: true, Rating: 4.7, ReviewCount: 167},
			},
			"4": {
				{ID: "v1", Name: "Grey Goose", Description: "French vodka", Price: 32.99, ImageURL: "/images/vodka/greygoose.png", CategoryID: "4", InStock: true, Rating: 4.5, ReviewCount: 189},
				{ID: "v2", Name: "Absolut", Description: "Swedish vodka", Price: 24.99, ImageURL: "/images/vodka/absolut.png", CategoryID: "4", InStock: true, Rating: 4.4, ReviewCount: 176},
				{ID: "v3", Name: "Belvedere", Description: "Polish vodka", Price: 36.99, ImageURL: "/images/vodka/belvedere.png", CategoryID: "4", InStock: true, Rating: 4.6, ReviewCount: 145},
			},
			"5": {
				{ID: "r1", Name: "Captain Morgan", Description: "Spiced rum", Price: 19.99, ImageURL: "/images/rum/captainmorgan.png", CategoryID: "5", InStock: true, Rating: 4.3, ReviewCount: 212},
				{ID: "r2", Name: "Malibu", Description: "Coconut rum", Price: 17.99, ImageURL: "/images/rum/malibu.png", CategoryID: "5", InStock: true, Rating: 4.2, ReviewCount: 187},
				{ID: "r3", Name: "Havana Club", Description: "Cuban rum", Price: 23.99, ImageURL: "/images/rum/havanaclub.png", CategoryID: "5", InStock: true, Rating: 4.5, ReviewCount: 156},
			},
		},
	}
}
