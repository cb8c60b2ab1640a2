package cli

import (
	"context"
	"fmt"
	"os"

	"shopfront/internal/models"
)

func (a *App) Addresses(ctx context.Context) error {
	addresses, err := a.api.Addresses(ctx)
	if err != nil {
		fmt.Println("Could not load addresses:", err)
		return err
	}
	if len(addresses) == 0 {
		fmt.Println("No saved addresses.")
		return nil
	}
	for _, addr := range addresses {
		fmt.Printf("%s  %s: %s, %s (%s)\n", addr.ID, addr.Name, addr.Details, addr.City, addr.Phone)
	}
	return nil
}

// AddAddress prompts for the address fields and saves a new address.
func (a *App) AddAddress(ctx context.Context) error {
	addr, err := a.promptAddress()
	if err != nil {
		return err
	}

	if err := a.api.AddAddress(ctx, addr); err != nil {
		fmt.Println("Could not save address:", err)
		return err
	}
	fmt.Println("Address saved.")
	return nil
}

// UpdateAddress re-prompts all fields for an existing address.
func (a *App) UpdateAddress(ctx context.Context, id string) error {
	addr, err := a.promptAddress()
	if err != nil {
		return err
	}

	if err := a.api.UpdateAddress(ctx, id, addr); err != nil {
		fmt.Println("Could not update address:", err)
		return err
	}
	fmt.Println("Address updated.")
	return nil
}

func (a *App) RemoveAddress(ctx context.Context, id string) error {
	if err := a.api.DeleteAddress(ctx, id); err != nil {
		fmt.Println("Could not remove address:", err)
		return err
	}
	fmt.Println("Address removed.")
	return nil
}

func (a *App) promptAddress() (models.Address, error) {
	var addr models.Address
	var err error

	if addr.Name, err = getSimpleText(a.reader, "Address label (e.g. Home)", os.Stdout); err != nil {
		return addr, err
	}
	if addr.Details, err = getSimpleText(a.reader, "Street and house", os.Stdout); err != nil {
		return addr, err
	}
	if addr.City, err = getSimpleText(a.reader, "City", os.Stdout); err != nil {
		return addr, err
	}
	if addr.Phone, err = getSimpleText(a.reader, "Phone", os.Stdout); err != nil {
		return addr, err
	}
	return addr, nil
}
