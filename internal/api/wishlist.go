package api

import (
	"context"

	"shopfront/internal/models"
)

type wishlistEnvelope struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Count   int              `json:"count"`
	Data    []models.Product `json:"data"`
}

// FetchWishlist returns the caller's wishlist products.
func (c *HTTPClient) FetchWishlist(ctx context.Context) ([]models.Product, error) {
	var env wishlistEnvelope
	if err := c.get(ctx, "/wishlist", nil, &env); err != nil {
		return nil, err
	}
	if env.Status != statusSuccess {
		return nil, reject(env.Message, "Failed to fetch wishlist")
	}
	return env.Data, nil
}

// AddToWishlist records wishlist membership for a product.
// Fired optimistically; only transport failures surface.
func (c *HTTPClient) AddToWishlist(ctx context.Context, productID string) error {
	body := map[string]string{"productId": productID}
	return c.post(ctx, "/wishlist", nil, body, nil)
}

// RemoveFromWishlist removes wishlist membership for a product.
func (c *HTTPClient) RemoveFromWishlist(ctx context.Context, productID string) error {
	return c.delete(ctx, "/wishlist/"+productID, nil)
}
