// Package server wires configuration, storage and the REST handlers into a
// runnable storefront API process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/access"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/logging"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/cache"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/config"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/media"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/repositories/repomanager"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/rest"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/services"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
	closers []func() error
}

// NewApp connects to PostgreSQL (and Redis when configured), applies
// migrations and builds the HTTP handler.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.closers = append(app.closers, db.Close)

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		app.Close()
		return nil, err
	}

	contentCache, err := app.initCache(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	presigner, err := media.NewPresigner(ctx, c)
	if err != nil {
		app.Close()
		return nil, err
	}

	authService := services.NewAuthService(db, rm, c)
	if err := app.bootstrapAdmin(ctx, authService); err != nil {
		app.Close()
		return nil, err
	}

	app.handler = rest.NewRouter(rest.Deps{
		Auth:                       authService,
		UserEntries:                services.NewUserEntryService(db, rm),
		Content:                    services.NewContentService(db, rm, contentCache, presigner, logger),
		Orders:                     services.NewOrderService(db, rm),
		Logger:                     logger,
		RequireAdminForOrderWrites: c.RequireAdminForOrderWrites,
	})
	return app, nil
}

func (app *App) initCache(ctx context.Context) (cache.Cache, error) {
	if app.config.RedisAddr == "" {
		app.logger.Info(ctx, "content cache disabled")
		return cache.Nop{}, nil
	}
	client, err := cache.Dial(ctx, app.config.RedisAddr)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, client.Close)
	return cache.NewRedisCache(client, "ecomus:", app.config.CacheTTL), nil
}

type accountEnsurer interface {
	EnsureAccount(ctx context.Context, email, password string, t access.UserType) error
}

func (app *App) bootstrapAdmin(ctx context.Context, s accountEnsurer) error {
	email, password := app.config.BootstrapAdminEmail, app.config.BootstrapAdminPassword
	if email == "" || password == "" {
		return nil
	}
	if err := s.EnsureAccount(ctx, email, password, access.UserTypeAdmin); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	app.logger.Info(ctx, "bootstrap admin ready", "email", email)
	return nil
}

// Close releases the database and cache connections.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or ctx cancellation, then shuts
// the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.Close()

	ln, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.EndpointAddrHTTP, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info(ctx, "starting HTTP server", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info(context.Background(), "stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
