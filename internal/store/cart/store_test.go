package cart

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/logging"
	"shopfront/internal/models"
)

type fakeAPI struct {
	mu      sync.Mutex
	cart    models.CartData
	fetchE  error
	addE    error
	updates []update
	removed []string
}

type update struct {
	productID string
	count     int
}

func (f *fakeAPI) FetchCart(ctx context.Context) (*models.CartData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchE != nil {
		return nil, f.fetchE
	}
	c := f.cart
	c.Products = append([]models.CartLine(nil), f.cart.Products...)
	return &c, nil
}

func (f *fakeAPI) AddToCart(ctx context.Context, productID string) error {
	return f.addE
}

func (f *fakeAPI) UpdateCartQuantity(ctx context.Context, productID string, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update{productID, count})
	return nil
}

func (f *fakeAPI) RemoveFromCart(ctx context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, productID)
	return nil
}

func newTestStore(api *fakeAPI) *Store {
	s := New(api, logging.NewDefault(io.Discard))
	s.async = func(fn func()) { fn() }
	return s
}

func serverCart() models.CartData {
	return models.CartData{
		ID:    "cart1",
		Owner: "user1",
		Products: []models.CartLine{
			{ID: "l1", Product: models.Product{ID: "p1", Title: "Mouse"}, Count: 2, Price: 100},
			{ID: "l2", Product: models.Product{ID: "p2", Title: "Keyboard"}, Count: 1, Price: 50},
		},
		TotalPrice: 250,
	}
}

func TestFetch(t *testing.T) {
	t.Run("replaces local state", func(t *testing.T) {
		s := newTestStore(&fakeAPI{cart: serverCart()})

		require.True(t, s.Snapshot().FirstFetching)
		require.NoError(t, s.Fetch(context.Background()))

		snap := s.Snapshot()
		assert.False(t, snap.IsFetching)
		assert.False(t, snap.FirstFetching)
		assert.Len(t, snap.Cart.Products, 2)
		assert.Equal(t, float64(250), snap.Cart.TotalPrice)
	})

	t.Run("failure clears flags and keeps state", func(t *testing.T) {
		s := newTestStore(&fakeAPI{fetchE: errors.New("boom")})

		err := s.Fetch(context.Background())
		require.Error(t, err)

		snap := s.Snapshot()
		assert.False(t, snap.IsFetching)
		assert.False(t, snap.FirstFetching)
		assert.Empty(t, snap.Cart.Products)
	})
}

func TestAdd(t *testing.T) {
	t.Run("placeholder replaced by server line", func(t *testing.T) {
		api := &fakeAPI{cart: serverCart()}
		s := newTestStore(api)

		require.NoError(t, s.Add(context.Background(), "p1"))

		snap := s.Snapshot()
		require.Len(t, snap.Cart.Products, 2)
		for _, l := range snap.Cart.Products {
			assert.NotEmpty(t, l.ID)
			assert.NotZero(t, l.Price)
		}
	})

	t.Run("placeholder stays when add fails", func(t *testing.T) {
		api := &fakeAPI{addE: errors.New("boom")}
		s := newTestStore(api)

		require.Error(t, s.Add(context.Background(), "p9"))

		line, ok := s.FindByProduct("p9")
		require.True(t, ok)
		assert.Equal(t, 1, line.Count)
		assert.Equal(t, float64(0), line.Price)
	})
}

func TestAdjustQuantity(t *testing.T) {
	t.Run("increment keeps total consistent", func(t *testing.T) {
		api := &fakeAPI{cart: serverCart()}
		s := newTestStore(api)
		require.NoError(t, s.Fetch(context.Background()))

		s.Increment("l2")
		s.Increment("l2")

		snap := s.Snapshot()
		assert.Equal(t, float64(350), snap.Cart.TotalPrice)

		line, ok := s.FindLine("l2")
		require.True(t, ok)
		assert.Equal(t, 3, line.Count)

		require.Len(t, api.updates, 2)
		assert.Equal(t, update{"p2", 2}, api.updates[0])
		assert.Equal(t, update{"p2", 3}, api.updates[1])
	})

	t.Run("decrement keeps total consistent", func(t *testing.T) {
		api := &fakeAPI{cart: serverCart()}
		s := newTestStore(api)
		require.NoError(t, s.Fetch(context.Background()))

		s.Decrement("l1")

		snap := s.Snapshot()
		assert.Equal(t, float64(150), snap.Cart.TotalPrice)

		line, _ := s.FindLine("l1")
		assert.Equal(t, 1, line.Count)
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		api := &fakeAPI{cart: serverCart()}
		s := newTestStore(api)
		require.NoError(t, s.Fetch(context.Background()))

		s.Increment("nope")

		assert.Equal(t, float64(250), s.Total())
		assert.Empty(t, api.updates)
	})

	t.Run("total stays exact across a mixed sequence", func(t *testing.T) {
		api := &fakeAPI{cart: serverCart()}
		s := newTestStore(api)
		require.NoError(t, s.Fetch(context.Background()))

		s.Increment("l1") // +100 -> 350
		s.Increment("l2") // +50  -> 400
		s.Decrement("l1") // -100 -> 300
		s.Delete("l2")    // -100 -> 200

		assert.Equal(t, float64(200), s.Total())
	})
}

func TestDelete(t *testing.T) {
	api := &fakeAPI{cart: serverCart()}
	s := newTestStore(api)
	require.NoError(t, s.Fetch(context.Background()))

	s.Delete("l1")

	snap := s.Snapshot()
	assert.Len(t, snap.Cart.Products, 1)
	assert.Equal(t, float64(50), snap.Cart.TotalPrice)
	assert.Equal(t, []string{"p1"}, api.removed)

	_, ok := s.FindLine("l1")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	api := &fakeAPI{cart: serverCart()}
	s := newTestStore(api)
	require.NoError(t, s.Fetch(context.Background()))

	s.Clear()

	snap := s.Snapshot()
	assert.True(t, snap.FirstFetching)
	assert.Empty(t, snap.Cart.Products)
	assert.Zero(t, snap.Cart.TotalPrice)
}
