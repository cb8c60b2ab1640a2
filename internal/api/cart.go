package api

import (
	"context"

	"shopfront/internal/models"
)

type cartEnvelope struct {
	Status         string           `json:"status"`
	Message        string           `json:"message"`
	NumOfCartItems int              `json:"numOfCartItems"`
	Data           *models.CartData `json:"data"`
}

// FetchCart returns the caller's server-side cart.
func (c *HTTPClient) FetchCart(ctx context.Context) (*models.CartData, error) {
	var env cartEnvelope
	if err := c.get(ctx, "/cart", nil, &env); err != nil {
		return nil, err
	}
	if env.Status != statusSuccess || env.Data == nil {
		return nil, reject(env.Message, "Failed to fetch cart")
	}
	return env.Data, nil
}

// AddToCart appends a product to the cart (count 1, or incremented server
// side when already present).
func (c *HTTPClient) AddToCart(ctx context.Context, productID string) error {
	var env cartEnvelope
	body := map[string]string{"productId": productID}
	if err := c.post(ctx, "/cart", nil, body, &env); err != nil {
		return err
	}
	if env.Status != statusSuccess {
		return reject(env.Message, "Failed to add product to cart")
	}
	return nil
}

// UpdateCartQuantity sets the count of a cart line, addressed by product id.
// The response body is not interpreted; only transport failures surface.
func (c *HTTPClient) UpdateCartQuantity(ctx context.Context, productID string, count int) error {
	body := map[string]int{"count": count}
	return c.put(ctx, "/cart/"+productID, body, nil)
}

// RemoveFromCart deletes a cart line, addressed by product id.
// The response body is not interpreted; only transport failures surface.
func (c *HTTPClient) RemoveFromCart(ctx context.Context, productID string) error {
	return c.delete(ctx, "/cart/"+productID, nil)
}
