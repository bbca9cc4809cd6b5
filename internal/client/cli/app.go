package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/cart"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/client"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/config"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/guard"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/models"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/repositories/metadata"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/session"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/filex"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
)

// API is the part of the storefront API the views use.
type API interface {
	Ping(ctx context.Context) error
	Banners(ctx context.Context) ([]models.Banner, error)
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.Product, error)
	Content(ctx context.Context, name string) (json.RawMessage, error)
	CreateOrder(ctx context.Context, order any) (string, error)
	Orders(ctx context.Context, filter map[string]string) ([]map[string]any, error)
	UpdateOrder(ctx context.Context, id string, set map[string]any) (client.UpdateResult, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
}

type Session interface {
	Current() (*guard.Identity, bool)
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

type Deps struct {
	API     API
	Records guard.RecordSource
	Session Session
	Cart    *cart.Store
	Watcher *cart.Watcher
	Log     logging.Logger
	In      io.Reader
	Out     io.Writer
}

type App struct {
	api     API
	session Session
	cart    *cart.Store
	watcher *cart.Watcher
	admin   *guard.AdminGuard
	gate    *guard.LoginGate
	log     logging.Logger

	in  *bufio.Reader
	out io.Writer

	route    string
	previous string
	products []models.Product
	closers  []func() error
}

func NewApp(d Deps) *App {
	a := &App{
		api:     d.API,
		session: d.Session,
		cart:    d.Cart,
		watcher: d.Watcher,
		log:     d.Log,
		in:      bufio.NewReader(d.In),
		out:     d.Out,
		route:   RouteHome,
	}
	a.admin = guard.NewAdminGuard(d.Records, a, d.Log)
	a.gate = guard.NewLoginGate(RouteCart)
	return a
}

// Bootstrap wires the client from configuration: local store, API client,
// session, cart and watcher.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewText(os.Stderr, cfg.LogLevel)

	dbPath, err := filex.EnsureParentDir(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("init local store: %w", err)
	}

	repo := metadata.NewSQLiteRepository(db)
	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)
	store := cart.NewStore(repo, log.With("component", "cart"))

	a := NewApp(Deps{
		API:     api,
		Records: api,
		Session: session.NewProvider(repo, api, log.With("component", "session")),
		Cart:    store,
		Watcher: cart.NewWatcher(store, dbPath, cfg.WatchDebounce, log.With("component", "cart-watcher")),
		Log:     log,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	a.closers = append(a.closers, db.Close)
	return a, nil
}

// Run checks the server, restores the session, starts the cart watcher and blocks in the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.api.Ping(ctx); err != nil {
		a.log.Warn(ctx, "storefront server unreachable", "error", err)
		fmt.Fprintln(a.out, "the store server is unreachable; pages may be empty until it is back")
	}
	a.session.Restore(ctx)

	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			a.log.Warn(ctx, "cart watcher disabled", "error", err)
		} else {
			defer a.watcher.Stop()
		}
	}

	fmt.Fprintln(a.out, "ecomus storefront (type 'help' for commands)")
	a.navigate(ctx, RouteHome)
	a.repl(ctx)
	return nil
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
}
