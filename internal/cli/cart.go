package cli

import (
	"context"
	"fmt"
)

// ShowCart prints the local cart mirror.
func (a *App) ShowCart(ctx context.Context) error {
	snap := a.cart.Snapshot()
	if snap.FirstFetching {
		fmt.Println("Cart not loaded yet. Sign in first.")
		return nil
	}
	if len(snap.Cart.Products) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	for _, l := range snap.Cart.Products {
		fmt.Printf("%s  %-40s x%-3d %10.2f\n", l.ID, l.Product.Title, l.Count, l.Subtotal())
	}
	fmt.Printf("Total: %.2f\n", snap.Cart.TotalPrice)
	return nil
}

// AddToCart puts a product in the cart. Anonymous visitors are routed
// through the login dialog first; the add runs once they sign in.
func (a *App) AddToCart(ctx context.Context, productID string) error {
	a.session.AuthProcess(func() {
		if err := a.cart.Add(ctx, productID); err != nil {
			fmt.Println("Could not add to cart:", err)
			return
		}
		fmt.Println("Added to cart.")
	})
	return nil
}

func (a *App) IncrementLine(ctx context.Context, lineID string) error {
	if _, ok := a.cart.FindLine(lineID); !ok {
		fmt.Println("No such cart line:", lineID)
		return nil
	}
	a.cart.Increment(lineID)
	fmt.Printf("Total: %.2f\n", a.cart.Total())
	return nil
}

// DecrementLine lowers a line's quantity. A line already at one is removed
// instead of being decremented to zero.
func (a *App) DecrementLine(ctx context.Context, lineID string) error {
	line, ok := a.cart.FindLine(lineID)
	if !ok {
		fmt.Println("No such cart line:", lineID)
		return nil
	}

	if line.Count <= 1 {
		a.cart.Delete(lineID)
		fmt.Println("Removed from cart.")
	} else {
		a.cart.Decrement(lineID)
	}
	fmt.Printf("Total: %.2f\n", a.cart.Total())
	return nil
}

func (a *App) RemoveLine(ctx context.Context, lineID string) error {
	if _, ok := a.cart.FindLine(lineID); !ok {
		fmt.Println("No such cart line:", lineID)
		return nil
	}
	a.cart.Delete(lineID)
	fmt.Println("Removed from cart.")
	return nil
}
