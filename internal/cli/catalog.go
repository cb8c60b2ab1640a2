package cli

import (
	"context"
	"fmt"

	"shopfront/internal/api"
)

// Products lists a page of catalog products, optionally filtered by a
// search keyword.
func (a *App) Products(ctx context.Context, keyword string) error {
	page, err := a.api.Products(ctx, api.ProductParams{Keyword: keyword, Limit: 20})
	if err != nil {
		fmt.Println("Could not load products:", err)
		return err
	}

	for _, p := range page.Data {
		fmt.Printf("%s  %-40s %10.2f  %s\n", p.ID, p.Title, p.Price, p.Category.Name)
	}
	fmt.Printf("Page %d of %d (%d results)\n",
		page.Metadata.CurrentPage, page.Metadata.NumberOfPages, page.Results)
	return nil
}

// Product shows one product in detail.
func (a *App) Product(ctx context.Context, id string) error {
	p, err := a.api.ProductByID(ctx, id)
	if err != nil {
		fmt.Println("Could not load product:", err)
		return err
	}

	fmt.Printf("%s\n%s\n", p.Title, p.Description)
	fmt.Printf("Price: %.2f  Rating: %.1f (%d)  In stock: %v\n",
		p.Price, p.RatingsAverage, p.RatingsQuantity, p.InStock())
	if a.wishlist.IsWished(p.ID) {
		fmt.Println("On your wishlist.")
	}
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.api.Categories(ctx)
	if err != nil {
		fmt.Println("Could not load categories:", err)
		return err
	}
	for _, c := range categories {
		fmt.Printf("%s  %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *App) Brands(ctx context.Context) error {
	brands, err := a.api.Brands(ctx)
	if err != nil {
		fmt.Println("Could not load brands:", err)
		return err
	}
	for _, b := range brands {
		fmt.Printf("%s  %s\n", b.ID, b.Name)
	}
	return nil
}
