package cli

import (
	"context"
	"fmt"
)

// ShowWishlist prints the local wishlist mirror.
func (a *App) ShowWishlist(ctx context.Context) error {
	snap := a.wishlist.Snapshot()
	if snap.FirstFetching {
		fmt.Println("Wishlist not loaded yet. Sign in first.")
		return nil
	}
	if len(snap.Products) == 0 {
		fmt.Println("Your wishlist is empty.")
		return nil
	}

	for _, p := range snap.Products {
		fmt.Printf("%s  %-40s %10.2f\n", p.ID, p.Title, p.Price)
	}
	return nil
}

// ToggleWish flips the product's wishlist membership. The product is
// looked up first so an optimistic add shows real data; anonymous
// visitors go through the login dialog and the toggle runs after.
func (a *App) ToggleWish(ctx context.Context, productID string) error {
	p, err := a.api.ProductByID(ctx, productID)
	if err != nil {
		fmt.Println("Could not load product:", err)
		return err
	}

	a.session.AuthProcess(func() {
		a.wishlist.Toggle(*p)
		if a.wishlist.IsWished(p.ID) {
			fmt.Println("Added to wishlist.")
		} else {
			fmt.Println("Removed from wishlist.")
		}
	})
	return nil
}
