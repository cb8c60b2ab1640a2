// Package models defines the client-side domain types mirroring the
// documents served by the storefront backend.
package models

// Category is a top-level catalog grouping.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image,omitempty"`
}

// Subcategory is a second-level catalog grouping.
type Subcategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category,omitempty"`
}

// Product mirrors the catalog product document. Inside cart lines the
// product may arrive as an id-only stub until the next full refetch.
type Product struct {
	ID                 string        `json:"_id"`
	Title              string        `json:"title"`
	Slug               string        `json:"slug"`
	Description        string        `json:"description,omitempty"`
	Price              float64       `json:"price"`
	PriceAfterDiscount float64       `json:"priceAfterDiscount,omitempty"`
	Quantity           int           `json:"quantity"`
	Sold               int           `json:"sold,omitempty"`
	ImageCover         string        `json:"imageCover"`
	Images             []string      `json:"images,omitempty"`
	Category           Category      `json:"category"`
	Brand              *Brand        `json:"brand,omitempty"`
	Subcategory        []Subcategory `json:"subcategory,omitempty"`
	RatingsAverage     float64       `json:"ratingsAverage,omitempty"`
	RatingsQuantity    int           `json:"ratingsQuantity,omitempty"`
	CreatedAt          string        `json:"createdAt,omitempty"`
	UpdatedAt          string        `json:"updatedAt,omitempty"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Quantity > 0
}
