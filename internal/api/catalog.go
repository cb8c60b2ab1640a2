package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"shopfront/internal/models"
)

// ProductParams are the catalog query parameters. Zero values are omitted
// from the query string; Categories and Brands repeat their key.
type ProductParams struct {
	Page     int
	Limit    int
	Sort     string // e.g. "-price", "-createdAt", "-ratingsAverage"
	PriceGTE float64
	PriceLTE float64

	Categories []string
	Brands     []string
	Keyword    string
	Fields     []string
}

func (p ProductParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.PriceGTE > 0 {
		q.Set("price[gte]", strconv.FormatFloat(p.PriceGTE, 'f', -1, 64))
	}
	if p.PriceLTE > 0 {
		q.Set("price[lte]", strconv.FormatFloat(p.PriceLTE, 'f', -1, 64))
	}
	for _, c := range p.Categories {
		q.Add("category", c)
	}
	for _, b := range p.Brands {
		q.Add("brand", b)
	}
	if len(p.Fields) > 0 {
		q.Set("fields", strings.Join(p.Fields, ","))
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	return q
}

// PageMetadata describes the pagination cursor of a collection response.
type PageMetadata struct {
	CurrentPage   int `json:"currentPage"`
	NumberOfPages int `json:"numberOfPages"`
	Limit         int `json:"limit"`
	NextPage      int `json:"nextPage,omitempty"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Results  int              `json:"results"`
	Metadata PageMetadata     `json:"metadata"`
	Data     []models.Product `json:"data"`
}

// Products lists catalog products.
func (c *HTTPClient) Products(ctx context.Context, p ProductParams) (*ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "/products", p.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductByID fetches a single product.
func (c *HTTPClient) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var env struct {
		Data *models.Product `json:"data"`
	}
	if err := c.get(ctx, "/products/"+id, nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, reject("", "product not found")
	}
	return env.Data, nil
}

// Categories lists all catalog categories.
func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var env struct {
		Data []models.Category `json:"data"`
	}
	if err := c.get(ctx, "/categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Brands lists all catalog brands.
func (c *HTTPClient) Brands(ctx context.Context) ([]models.Brand, error) {
	var env struct {
		Data []models.Brand `json:"data"`
	}
	if err := c.get(ctx, "/brands", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
