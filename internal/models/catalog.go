// Package models defines the catalog data types shared between the
// backend, the HTTP client, and the cart/cache subsystems. Field names
// follow the wire format of the catalog API.
package models

// Product is a single sellable item. Products are immutable once fetched;
// identity is the string ID, unique within the catalog.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  string  `json:"categoryId"`
	InStock     bool    `json:"inStock"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// Category is reference data for a product grouping.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Brand is reference data for a product manufacturer.
type Brand struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Banner is a promotional image shown on the home screen.
type Banner struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

// HomeResponse is the full home payload served by GET /api/home.
// Missing fields decode to empty collections; unknown fields are ignored.
type HomeResponse struct {
	Categories             []Category           `json:"categories"`
	Banners                []Banner             `json:"banners"`
	Brands                 []Brand              `json:"brands"`
	LimitedEditionProducts []Product            `json:"limitedEditionProducts"`
	CategoryProducts       map[string][]Product `json:"categoryProducts"`
}
