package cli

import (
	"context"
	"fmt"
	"os"

	"shopfront/internal/api"
	"shopfront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginPrompt opens the interactive login dialog. The session manager calls
// it when an anonymous visitor hits a command that needs an account; on
// success the deferred command runs automatically.
func (a *App) loginPrompt() {
	fmt.Println("Sign in to continue (empty email cancels).")
	_ = a.Login(context.Background())
}

// Login prompts for credentials and authenticates. An empty email cancels:
// any action waiting behind the login dialog is discarded.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		a.session.DismissLogin()
		return nil
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if msg := validateLogin(email, password); msg != "" {
		fmt.Println(msg)
		return nil
	}

	res := a.session.Login(ctx, api.Credentials{Email: email, Password: string(password)})
	fmt.Println(res.Message)
	return nil
}

// Register prompts for the signup fields and creates an account. A fresh
// registration signs the user in but does not release a pending deferred
// action; that stays behind the login dialog.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		fmt.Println("Passwords must match")
		return nil
	}
	if msg := validateRegister(name, email, phone, password); msg != "" {
		fmt.Println(msg)
		return nil
	}

	res := a.session.Register(ctx, api.RegisterPayload{
		Name:       name,
		Email:      email,
		Password:   string(password),
		RePassword: string(confirm),
		Phone:      phone,
	})
	fmt.Println(res.Message)
	return nil
}

// Logout ends the session and drops the stored token.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the signed-in account, fetching the full profile when the
// backend has one.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated() || snap.User == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	u, err := a.api.UserByID(ctx, snap.User.ID)
	if err != nil {
		fmt.Printf("%s (%s)\n", snap.User.Name, snap.User.ID)
		return nil
	}
	fmt.Printf("%s <%s> %s  role=%s\n", u.Name, u.Email, u.Phone, u.Role)
	return nil
}
