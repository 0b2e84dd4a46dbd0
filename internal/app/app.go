package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dojoledger/internal/config"
	"github.com/GlebRadaev/dojoledger/internal/handlers"
	"github.com/GlebRadaev/dojoledger/internal/pg"
	"github.com/GlebRadaev/dojoledger/internal/repo"
	"github.com/GlebRadaev/dojoledger/internal/service"
	"github.com/GlebRadaev/dojoledger/pkg/auth"
	"github.com/GlebRadaev/dojoledger/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	// closers run after the HTTP server has drained.
	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.wire(cfg, pool)
	a.closers = append(a.closers, pool.Close)

	if err = a.startHTTPServer(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// wire builds the repository, service and handler layers on top of pool.
func (a *Application) wire(cfg *config.Config, pool pg.Pool) {
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)
	tokens := auth.NewJWTService(cfg.SessionSecret)

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, tokens, cfg.SessionTTL)
	a.api = handlers.New(a.srv, tokens)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) router() http.Handler {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	return router
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Address)
	if err != nil {
		return err
	}
	zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
	a.serve(ctx, ln, a.router())
	return nil
}

// serve runs the HTTP server on ln until ctx is done, then drains in-flight requests before
// running the closers.
func (a *Application) serve(ctx context.Context, ln net.Listener, handler http.Handler) {
	server := http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		for _, closeFn := range a.closers {
			closeFn()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
