package api

import (
	"context"

	"shopfront/internal/models"
)

type addressEnvelope struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    []models.Address `json:"data"`
}

// Addresses lists the caller's saved shipping addresses.
func (c *HTTPClient) Addresses(ctx context.Context) ([]models.Address, error) {
	var env addressEnvelope
	if err := c.get(ctx, "/addresses", nil, &env); err != nil {
		return nil, err
	}
	if env.Status != statusSuccess {
		return nil, reject(env.Message, "Failed to fetch addresses")
	}
	return env.Data, nil
}

// AddAddress saves a new shipping address.
func (c *HTTPClient) AddAddress(ctx context.Context, a models.Address) error {
	var env addressEnvelope
	if err := c.post(ctx, "/addresses", nil, a, &env); err != nil {
		return err
	}
	if env.Status != statusSuccess {
		return reject(env.Message, "Failed to save address")
	}
	return nil
}

// UpdateAddress overwrites a saved shipping address.
func (c *HTTPClient) UpdateAddress(ctx context.Context, id string, a models.Address) error {
	var env addressEnvelope
	if err := c.put(ctx, "/addresses/"+id, a, &env); err != nil {
		return err
	}
	if env.Status != statusSuccess {
		return reject(env.Message, "Failed to update address")
	}
	return nil
}

// DeleteAddress removes a saved shipping address.
func (c *HTTPClient) DeleteAddress(ctx context.Context, id string) error {
	var env addressEnvelope
	if err := c.delete(ctx, "/addresses/"+id, &env); err != nil {
		return err
	}
	if env.Status != statusSuccess {
		return reject(env.Message, "Failed to remove address")
	}
	return nil
}
