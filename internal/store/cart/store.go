// Package cart keeps a client-side mirror of the server cart usable for
// instant UI feedback. Local mutations are applied synchronously and
// optimistically; the matching server calls are fired without awaiting and
// never rolled back — consistency is restored by the next full Fetch.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopfront/internal/logging"
	"shopfront/internal/models"
)

// API is the slice of the remote client the cart store needs.
type API interface {
	FetchCart(ctx context.Context) (*models.CartData, error)
	AddToCart(ctx context.Context, productID string) error
	UpdateCartQuantity(ctx context.Context, productID string, count int) error
	RemoveFromCart(ctx context.Context, productID string) error
}

// State is the cart store's observable state. FirstFetching stays true
// until the first Fetch completes (success or failure) so skeleton UI is
// shown only once per session.
type State struct {
	IsFetching    bool
	FirstFetching bool
	Cart          models.CartData
}

const pushTimeout = 10 * time.Second

// Store is the cart cache. All mutations run atomically under one lock;
// their server side-effects are asynchronous and unordered relative to
// each other.
type Store struct {
	api API
	log logging.Logger

	mu    sync.Mutex
	state State

	// async dispatches fire-and-forget server pushes. Tests replace it
	// with a synchronous variant.
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

// Snapshot returns a copy of the current state. The line slice is cloned so
// callers can iterate without holding the store's lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Cart.Products = make([]models.CartLine, len(s.state.Cart.Products))
	copy(snap.Cart.Products, s.state.Cart.Products)
	return snap
}

// Total returns the running cart total.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cart.TotalPrice
}

// Fetch replaces the local mirror with the server cart. IsFetching is set
// for the duration; FirstFetching is cleared on completion either way.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.state.IsFetching = true
	s.mu.Unlock()

	cart, err := s.api.FetchCart(ctx)

	s.mu.Lock()
	s.state.IsFetching = false
	s.state.FirstFetching = false
	if err == nil {
		s.state.Cart = *cart
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "fetching cart", "error", err)
		return err
	}
	return nil
}

// Add puts a product in the cart: a placeholder line appears locally at
// once, the server add is awaited, and a follow-up Fetch swaps the
// placeholder for the authoritative line with its server-assigned id.
func (s *Store) Add(ctx context.Context, productID string) error {
	s.addLocal(productID)

	if err := s.api.AddToCart(ctx, productID); err != nil {
		return err
	}

	return s.Fetch(ctx)
}

// addLocal appends a transient placeholder line: client-generated id,
// count 1, price 0, id-only product stub. It is never pushed to the
// server; the next Fetch replaces it.
func (s *Store) addLocal(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cart.Products = append(s.state.Cart.Products, models.CartLine{
		ID:      uuid.NewString(),
		Product: models.Product{ID: productID},
		Count:   1,
		Price:   0,
	})
}

// FindByProduct returns the line holding the given product, if any.
func (s *Store) FindByProduct(productID string) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.state.Cart.Products {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return models.CartLine{}, false
}

// FindLine returns the line with the given line id, if any.
func (s *Store) FindLine(lineID string) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(lineID); i >= 0 {
		return s.state.Cart.Products[i], true
	}
	return models.CartLine{}, false
}

// Increment raises the line's count by one.
func (s *Store) Increment(lineID string) {
	s.adjust(lineID, +1)
}

// Decrement lowers the line's count by one. The store does not clamp at 1:
// callers must route a count==1 decrement to Delete instead.
func (s *Store) Decrement(lineID string) {
	s.adjust(lineID, -1)
}

// adjust applies the count delta locally — keeping TotalPrice consistent
// incrementally, price * delta — and pushes the new count to the server
// without awaiting. Rapid adjustments issue independent, unordered pushes.
func (s *Store) adjust(lineID string, delta int) {
	s.mu.Lock()
	i := s.indexOf(lineID)
	if i < 0 {
		s.mu.Unlock()
		s.log.Warn(context.Background(), "cart line not found", "line", lineID)
		return
	}

	line := &s.state.Cart.Products[i]
	line.Count += delta
	s.state.Cart.TotalPrice += line.Price * float64(delta)

	productID := line.Product.ID
	count := line.Count
	s.mu.Unlock()

	s.push(func(ctx context.Context) error {
		return s.api.UpdateCartQuantity(ctx, productID, count)
	}, "pushing cart quantity", productID)
}

// Delete removes the line and subtracts its full contribution from the
// total, then requests the server-side removal without awaiting.
func (s *Store) Delete(lineID string) {
	s.mu.Lock()
	i := s.indexOf(lineID)
	if i < 0 {
		s.mu.Unlock()
		s.log.Warn(context.Background(), "cart line not found", "line", lineID)
		return
	}

	line := s.state.Cart.Products[i]
	s.state.Cart.TotalPrice -= line.Subtotal()
	s.state.Cart.Products = append(s.state.Cart.Products[:i], s.state.Cart.Products[i+1:]...)
	s.mu.Unlock()

	s.push(func(ctx context.Context) error {
		return s.api.RemoveFromCart(ctx, line.Product.ID)
	}, "pushing cart removal", line.Product.ID)
}

// Clear resets the store to its initial empty state. Called on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{FirstFetching: true}
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(lineID string) int {
	for i, l := range s.state.Cart.Products {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

// push runs a server side-effect on the async dispatcher. Failures are
// logged and otherwise ignored: local state is authoritative until the
// next Fetch.
func (s *Store) push(call func(ctx context.Context) error, msg, productID string) {
	s.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := call(ctx); err != nil {
			s.log.Warn(ctx, msg, "product", productID, "error", err)
		}
	})
}
