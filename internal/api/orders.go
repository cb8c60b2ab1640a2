package api

import (
	"context"
	"net/url"

	"shopfront/internal/models"
)

type checkoutEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Session *struct {
		URL string `json:"url"`
	} `json:"session"`
}

// CheckoutSession opens a hosted payment session for the cart and returns
// the gateway redirect URL. returnURL is where the gateway sends the user
// afterwards; the gateway itself is opaque to this client.
func (c *HTTPClient) CheckoutSession(ctx context.Context, cartID, returnURL string, addr models.Address) (string, error) {
	q := url.Values{}
	q.Set("url", returnURL)

	var env checkoutEnvelope
	body := map[string]models.Address{"shippingAddress": addr}
	if err := c.post(ctx, "/orders/checkout-session/"+cartID, q, body, &env); err != nil {
		return "", err
	}
	if env.Status != statusSuccess || env.Session == nil {
		return "", reject(env.Message, "Failed to start checkout")
	}
	return env.Session.URL, nil
}

// CheckoutOnDelivery places a pay-on-delivery order for the cart.
func (c *HTTPClient) CheckoutOnDelivery(ctx context.Context, cartID string, addr models.Address) error {
	var env checkoutEnvelope
	body := map[string]models.Address{"shippingAddress": addr}
	if err := c.post(ctx, "/orders/"+cartID, nil, body, &env); err != nil {
		return err
	}
	if env.Status != statusSuccess {
		return reject(env.Message, "Failed to place order")
	}
	return nil
}

// OrdersByUser lists the orders placed by a user. The endpoint answers
// with a bare JSON array.
func (c *HTTPClient) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders/user/"+userID, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
