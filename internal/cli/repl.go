package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Products(ctx context.Context, keyword string) error
	Product(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	Brands(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, productID string) error
	IncrementLine(ctx context.Context, lineID string) error
	DecrementLine(ctx context.Context, lineID string) error
	RemoveLine(ctx context.Context, lineID string) error
	ShowWishlist(ctx context.Context) error
	ToggleWish(ctx context.Context, productID string) error
	Addresses(ctx context.Context) error
	AddAddress(ctx context.Context) error
	UpdateAddress(ctx context.Context, id string) error
	RemoveAddress(ctx context.Context, id string) error
	Orders(ctx context.Context) error
	Checkout(ctx context.Context, method string) error
	ResetPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

const helpAnonymous = "Available commands: products [keyword], product <id>, categories, brands, " +
	"add <productId>, wish <productId>, login, register, resetpw, exit"

const helpAuthenticated = "Available commands: products [keyword], product <id>, categories, brands, " +
	"cart, add <productId>, inc/dec/remove <lineId>, wishlist, wish <productId>, " +
	"addresses, addaddress, upaddress <id>, rmaddress <id>, orders, checkout <card|cod>, " +
	"whoami, profile, passwd, logout, exit"

// runREPL starts a read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpAuthenticated)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "products":
			_ = a.Products(ctx, strings.Join(args, " "))

		case "product":
			if len(args) == 0 {
				printlnFn("Usage: product <id>")
				continue
			}
			_ = a.Product(ctx, args[0])

		case "categories":
			_ = a.Categories(ctx)

		case "brands":
			_ = a.Brands(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <productId>")
				continue
			}
			_ = a.AddToCart(ctx, args[0])

		case "inc":
			if len(args) == 0 {
				printlnFn("Usage: inc <lineId>")
				continue
			}
			_ = a.IncrementLine(ctx, args[0])

		case "dec":
			if len(args) == 0 {
				printlnFn("Usage: dec <lineId>")
				continue
			}
			_ = a.DecrementLine(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <lineId>")
				continue
			}
			_ = a.RemoveLine(ctx, args[0])

		case "wishlist":
			_ = a.ShowWishlist(ctx)

		case "wish":
			if len(args) == 0 {
				printlnFn("Usage: wish <productId>")
				continue
			}
			_ = a.ToggleWish(ctx, args[0])

		case "addresses":
			_ = a.Addresses(ctx)

		case "addaddress":
			_ = a.AddAddress(ctx)

		case "upaddress":
			if len(args) == 0 {
				printlnFn("Usage: upaddress <id>")
				continue
			}
			_ = a.UpdateAddress(ctx, args[0])

		case "rmaddress":
			if len(args) == 0 {
				printlnFn("Usage: rmaddress <id>")
				continue
			}
			_ = a.RemoveAddress(ctx, args[0])

		case "orders":
			_ = a.Orders(ctx)

		case "checkout":
			method := "card"
			if len(args) > 0 {
				method = args[0]
			}
			_ = a.Checkout(ctx, method)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
