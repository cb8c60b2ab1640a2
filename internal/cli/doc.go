// Package cli provides the interactive shopfront command-line client.
//
// It wires configuration, the sealed local token store, the REST client,
// the session manager and the optimistic cart/wishlist mirrors behind an
// interactive REPL. Anonymous visitors can browse the catalog; commands
// that need an account open the login dialog and run once the visitor
// signs in.
//
// Key features:
//   - Browse products, categories and brands
//   - Cart with instant quantity updates
//   - Wishlist toggling
//   - Addresses, orders and checkout (hosted payment or cash on delivery)
//   - Forgotten-password wizard with resend cooldown
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
