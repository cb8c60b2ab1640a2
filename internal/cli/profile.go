package cli

import (
	"context"
	"fmt"
	"os"

	"shopfront/internal/api"
	"shopfront/internal/common"
)

// Profile prompts for new profile values and updates the account. Fields
// left empty are not changed.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if name == "" && email == "" && phone == "" {
		fmt.Println("Nothing to update.")
		return nil
	}

	if err := a.api.UpdateMe(ctx, api.ProfileUpdate{Name: name, Email: email, Phone: phone}); err != nil {
		fmt.Println("Could not update profile:", err)
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

// ChangePassword updates the account password. A successful change ends
// the current session: the user signs back in with the new password.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Sign in first.")
		return nil
	}

	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(next) != string(confirm) {
		fmt.Println("Passwords must match")
		return nil
	}

	_, err = a.api.ChangePassword(ctx, api.PasswordChange{
		CurrentPassword: string(current),
		Password:        string(next),
		RePassword:      string(confirm),
	})
	if err != nil {
		fmt.Println("Could not change password:", err)
		return err
	}

	a.session.Logout(ctx)
	fmt.Println("Password changed. Please sign in again.")
	return nil
}
