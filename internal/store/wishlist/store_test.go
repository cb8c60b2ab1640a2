package wishlist

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
	list    []models.Product
	fetchE  error
	added   []string
	removed []string
}

func (f *fakeAPI) FetchWishlist(ctx context.Context) ([]models.Product, error) {
	if f.fetchE != nil {
		return nil, f.fetchE
	}
	return append([]models.Product(nil), f.list...), nil
}

func (f *fakeAPI) AddToWishlist(ctx context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, productID)
	return nil
}

func (f *fakeAPI) RemoveFromWishlist(ctx context.Context, productID string) error {
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

func TestFetch(t *testing.T) {
	t.Run("replaces local set", func(t *testing.T) {
		api := &fakeAPI{list: []models.Product{{ID: "p1"}, {ID: "p2"}}}
		s := newTestStore(api)

		require.True(t, s.Snapshot().FirstFetching)
		require.NoError(t, s.Fetch(context.Background()))

		snap := s.Snapshot()
		assert.False(t, snap.IsFetching)
		assert.False(t, snap.FirstFetching)
		assert.Len(t, snap.Products, 2)
		assert.True(t, s.IsWished("p1"))
	})

	t.Run("failure clears flags", func(t *testing.T) {
		s := newTestStore(&fakeAPI{fetchE: errors.New("boom")})

		require.Error(t, s.Fetch(context.Background()))

		snap := s.Snapshot()
		assert.False(t, snap.IsFetching)
		assert.False(t, snap.FirstFetching)
	})
}

func TestToggle(t *testing.T) {
	t.Run("adds when absent", func(t *testing.T) {
		api := &fakeAPI{}
		s := newTestStore(api)

		s.Toggle(models.Product{ID: "p1", Title: "Mouse"})

		assert.True(t, s.IsWished("p1"))
		assert.Equal(t, []string{"p1"}, api.added)
	})

	t.Run("removes when present", func(t *testing.T) {
		api := &fakeAPI{list: []models.Product{{ID: "p1"}}}
		s := newTestStore(api)
		require.NoError(t, s.Fetch(context.Background()))

		s.Toggle(models.Product{ID: "p1"})

		assert.False(t, s.IsWished("p1"))
		assert.Equal(t, []string{"p1"}, api.removed)
	})

	t.Run("double toggle restores membership", func(t *testing.T) {
		api := &fakeAPI{}
		s := newTestStore(api)
		p := models.Product{ID: "p1"}

		s.Toggle(p)
		s.Toggle(p)

		assert.False(t, s.IsWished("p1"))
		assert.Equal(t, []string{"p1"}, api.added)
		assert.Equal(t, []string{"p1"}, api.removed)
		assert.Empty(t, s.Snapshot().Products)
	})

	t.Run("never holds duplicates", func(t *testing.T) {
		api := &fakeAPI{}
		s := newTestStore(api)
		p := models.Product{ID: "p1"}

		s.Toggle(p)
		s.Toggle(p)
		s.Toggle(p)

		assert.Len(t, s.Snapshot().Products, 1)
	})
}

func TestClear(t *testing.T) {
	api := &fakeAPI{list: []models.Product{{ID: "p1"}}}
	s := newTestStore(api)
	require.NoError(t, s.Fetch(context.Background()))

	s.Clear()

	snap := s.Snapshot()
	assert.True(t, snap.FirstFetching)
	assert.Empty(t, snap.Products)
	assert.False(t, s.IsWished("p1"))
}
