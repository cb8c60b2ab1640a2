package api

import (
	"context"

	"shopfront/internal/models"
)

// Client is the full remote surface of the storefront backend. Consumers
// should depend on the narrow slice they need; *HTTPClient satisfies all
// of them.
type Client interface {
	// Auth
	Login(ctx context.Context, cr Credentials) (*AuthResult, error)
	Register(ctx context.Context, p RegisterPayload) (*AuthResult, error)
	Verify(ctx context.Context) (*Identity, error)
	SendOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) (string, error)

	// Profile
	UpdateMe(ctx context.Context, p ProfileUpdate) error
	ChangePassword(ctx context.Context, p PasswordChange) (string, error)
	UserByID(ctx context.Context, id string) (*models.User, error)

	// Catalog
	Products(ctx context.Context, p ProductParams) (*ProductPage, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Brands(ctx context.Context) ([]models.Brand, error)

	// Cart
	FetchCart(ctx context.Context) (*models.CartData, error)
	AddToCart(ctx context.Context, productID string) error
	UpdateCartQuantity(ctx context.Context, productID string, count int) error
	RemoveFromCart(ctx context.Context, productID string) error

	// Wishlist
	FetchWishlist(ctx context.Context) ([]models.Product, error)
	AddToWishlist(ctx context.Context, productID string) error
	RemoveFromWishlist(ctx context.Context, productID string) error

	// Addresses
	Addresses(ctx context.Context) ([]models.Address, error)
	AddAddress(ctx context.Context, a models.Address) error
	UpdateAddress(ctx context.Context, id string, a models.Address) error
	DeleteAddress(ctx context.Context, id string) error

	// Orders
	CheckoutSession(ctx context.Context, cartID, returnURL string, addr models.Address) (string, error)
	CheckoutOnDelivery(ctx context.Context, cartID string, addr models.Address) error
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
}

var _ Client = (*HTTPClient)(nil)
