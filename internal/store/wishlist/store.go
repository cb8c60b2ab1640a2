// Package wishlist mirrors the server-side wishlist as a local product set.
// Membership flips are applied locally first and pushed to the server
// without awaiting; failures are logged, never rolled back.
package wishlist

import (
	"context"
	"sync"
	"time"

	"shopfront/internal/logging"
	"shopfront/internal/models"
)

// API is the slice of the remote client the wishlist store needs.
type API interface {
	FetchWishlist(ctx context.Context) ([]models.Product, error)
	AddToWishlist(ctx context.Context, productID string) error
	RemoveFromWishlist(ctx context.Context, productID string) error
}

// State is the wishlist store's observable state.
type State struct {
	IsFetching    bool
	FirstFetching bool
	Products      []models.Product
}

const pushTimeout = 10 * time.Second

// Store is the wishlist cache. The product list acts as a set keyed by
// product id.
type Store struct {
	api API
	log logging.Logger

	mu    sync.Mutex
	state State

	async func(fn func())
}

func New(apiClient API, log logging.Logger) *Store {
	return &Store{
		api:   apiClient,
		log:   log,
		state: State{FirstFetching: true},
		async: func(fn func()) { go fn() },
	}
}

// Snapshot returns a copy of the current state with a cloned product slice.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Products = make([]models.Product, len(s.state.Products))
	copy(snap.Products, s.state.Products)
	return snap
}

// IsWished reports whether the product is currently in the set.
func (s *Store) IsWished(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Fetch replaces the local set with the server wishlist.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.state.IsFetching = true
	s.mu.Unlock()

	products, err := s.api.FetchWishlist(ctx)

	s.mu.Lock()
	s.state.IsFetching = false
	s.state.FirstFetching = false
	if err == nil {
		s.state.Products = products
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "fetching wishlist", "error", err)
		return err
	}
	return nil
}

// Toggle flips the product's membership: present becomes absent and vice
// versa. The local set changes at once; the matching server call runs on
// the async dispatcher. Toggling twice restores the original membership.
func (s *Store) Toggle(product models.Product) {
	s.mu.Lock()
	i := s.indexOf(product.ID)
	adding := i < 0
	if adding {
		s.state.Products = append(s.state.Products, product)
	} else {
		s.state.Products = append(s.state.Products[:i], s.state.Products[i+1:]...)
	}
	s.mu.Unlock()

	s.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		var err error
		if adding {
			err = s.api.AddToWishlist(ctx, product.ID)
		} else {
			err = s.api.RemoveFromWishlist(ctx, product.ID)
		}
		if err != nil {
			s.log.Warn(ctx, "pushing wishlist change", "product", product.ID, "error", err)
		}
	})
}

// Clear resets the store to its initial empty state. Called on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{FirstFetching: true}
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(productID string) int {
	for i, p := range s.state.Products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}
