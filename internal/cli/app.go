package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"shopfront/internal/api"
	"shopfront/internal/config"
	"shopfront/internal/logging"
	"shopfront/internal/session"
	"shopfront/internal/store/cart"
	"shopfront/internal/store/wishlist"
	"shopfront/internal/tokenstore"

	_ "modernc.org/sqlite"
)

const storeFetchTimeout = 30 * time.Second

// App wires the storefront client together: the sealed token store, the
// REST client, the session manager and the optimistic cart/wishlist
// mirrors. One App instance backs one interactive session.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      api.Client
	tokens   *tokenstore.Cache
	session  *session.Manager
	cart     *cart.Store
	wishlist *wishlist.Store
	reader   *bufio.Reader

	mu      sync.Mutex
	wasAuth bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := tokenstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "initializing local database", "error", err)
		return nil, err
	}

	key, err := tokenstore.LoadOrCreateKey(c.KeyPath)
	if err != nil {
		return nil, err
	}

	tokens := tokenstore.NewCache(tokenstore.NewSQLiteRepository(db, key))
	if err := tokens.Load(ctx); err != nil {
		log.Warn(ctx, "loading stored token", "error", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, tokens, log, api.WithTimeout(c.RequestTimeout))

	app := &App{
		config:   c,
		log:      log,
		db:       db,
		api:      apiClient,
		tokens:   tokens,
		session:  session.NewManager(apiClient, tokens, log),
		cart:     cart.New(apiClient, log),
		wishlist: wishlist.New(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
	}
	app.session.SetLoginPrompt(app.loginPrompt)
	app.session.OnChange(app.onSessionChange)
	return app, nil
}

// Run restores the previous session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	a.session.Bootstrap(ctx)
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// onSessionChange reacts to authenticated/anonymous transitions: the cart
// and wishlist mirrors are filled when a user signs in and dropped when
// the session ends. Repeated callbacks in the same state are ignored.
func (a *App) onSessionChange(s session.Snapshot) {
	authed := s.IsAuthenticated()

	a.mu.Lock()
	if authed == a.wasAuth {
		a.mu.Unlock()
		return
	}
	a.wasAuth = authed
	a.mu.Unlock()

	if !authed {
		a.cart.Clear()
		a.wishlist.Clear()
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeFetchTimeout)
		defer cancel()
		_ = a.cart.Fetch(ctx)
		_ = a.wishlist.Fetch(ctx)
	}()
}
