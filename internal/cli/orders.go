package cli

import (
	"context"
	"fmt"
)

// Orders lists the signed-in user's order history.
func (a *App) Orders(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() || snap.User == nil {
		fmt.Println("Sign in to see your orders.")
		return nil
	}

	orders, err := a.api.OrdersByUser(ctx, snap.User.ID)
	if err != nil {
		fmt.Println("Could not load orders:", err)
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	for _, o := range orders {
		status := "unpaid"
		if o.IsPaid {
			status = "paid"
		}
		fmt.Printf("%s  %-8s %-6s %10.2f  %s\n",
			o.ID, o.PaymentMethodType, status, o.TotalOrderPrice, o.CreatedAt)
	}
	return nil
}

// Checkout turns the current cart into an order. "card" opens a hosted
// payment session and prints its URL; "cod" places a cash-on-delivery
// order directly.
func (a *App) Checkout(ctx context.Context, method string) error {
	snap := a.cart.Snapshot()
	if snap.Cart.ID == "" || len(snap.Cart.Products) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	addr, err := a.promptAddress()
	if err != nil {
		return err
	}

	switch method {
	case "card":
		url, err := a.api.CheckoutSession(ctx, snap.Cart.ID, a.config.HomeURL, addr)
		if err != nil {
			fmt.Println("Could not start payment:", err)
			return err
		}
		fmt.Println("Complete your payment at:", url)

	case "cod":
		if err := a.api.CheckoutOnDelivery(ctx, snap.Cart.ID, addr); err != nil {
			fmt.Println("Could not place order:", err)
			return err
		}
		fmt.Println("Order placed. Pay on delivery.")
		if err := a.cart.Fetch(ctx); err == nil {
			fmt.Println("Cart refreshed.")
		}

	default:
		fmt.Println("Usage: checkout <card|cod>")
	}
	return nil
}
