package cli

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/logging"
	"shopfront/internal/models"
	"shopfront/internal/store/cart"
)

type cartAPIStub struct {
	mu      sync.Mutex
	cart    models.CartData
	updates []int
	removed []string
}

func (s *cartAPIStub) FetchCart(ctx context.Context) (*models.CartData, error) {
	c := s.cart
	c.Products = append([]models.CartLine(nil), s.cart.Products...)
	return &c, nil
}

func (s *cartAPIStub) AddToCart(ctx context.Context, productID string) error { return nil }

func (s *cartAPIStub) UpdateCartQuantity(ctx context.Context, productID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, count)
	return nil
}

func (s *cartAPIStub) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, productID)
	return nil
}

func (s *cartAPIStub) snapshot() ([]int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.updates...), append([]string(nil), s.removed...)
}

func newCartTestApp(t *testing.T, lines ...models.CartLine) (*App, *cartAPIStub) {
	t.Helper()

	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	stub := &cartAPIStub{cart: models.CartData{
		ID:         "cart1",
		Products:   lines,
		TotalPrice: total,
	}}

	app := &App{cart: cart.New(stub, logging.NewDefault(io.Discard))}
	require.NoError(t, app.cart.Fetch(context.Background()))
	return app, stub
}

func TestDecrementLine_LastUnitRemovesLine(t *testing.T) {
	app, stub := newCartTestApp(t,
		models.CartLine{ID: "l1", Product: models.Product{ID: "p1"}, Count: 1, Price: 100},
	)

	require.NoError(t, app.DecrementLine(context.Background(), "l1"))

	_, ok := app.cart.FindLine("l1")
	assert.False(t, ok, "line at count 1 must be removed, not decremented")
	assert.Equal(t, float64(0), app.cart.Total())

	require.Eventually(t, func() bool {
		_, removed := stub.snapshot()
		return len(removed) == 1
	}, time.Second, 10*time.Millisecond, "removal must be pushed to the server")

	updates, removed := stub.snapshot()
	assert.Equal(t, []string{"p1"}, removed)
	assert.Empty(t, updates, "no quantity update may be sent for the last unit")
}

func TestDecrementLine_AboveOneKeepsLine(t *testing.T) {
	app, stub := newCartTestApp(t,
		models.CartLine{ID: "l1", Product: models.Product{ID: "p1"}, Count: 2, Price: 100},
	)

	require.NoError(t, app.DecrementLine(context.Background(), "l1"))

	line, ok := app.cart.FindLine("l1")
	require.True(t, ok)
	assert.Equal(t, 1, line.Count)
	assert.Equal(t, float64(100), app.cart.Total())

	require.Eventually(t, func() bool {
		updates, _ := stub.snapshot()
		return len(updates) == 1
	}, time.Second, 10*time.Millisecond)

	updates, removed := stub.snapshot()
	assert.Equal(t, []int{1}, updates)
	assert.Empty(t, removed)
}
