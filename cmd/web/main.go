package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GarwanshiJain/ecommerce.repo/internal/handlers"
	mw "github.com/GarwanshiJain/ecommerce.repo/internal/middleware"
	"github.com/GarwanshiJain/ecommerce.repo/internal/platform/config"
	"github.com/GarwanshiJain/ecommerce.repo/internal/platform/observability"
	platformredis "github.com/GarwanshiJain/ecommerce.repo/internal/platform/redis"
	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
	memoryrepo "github.com/GarwanshiJain/ecommerce.repo/internal/repositories/memory"
	redisrepo "github.com/GarwanshiJain/ecommerce.repo/internal/repositories/redis"
	"github.com/GarwanshiJain/ecommerce.repo/internal/services"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		addr     string
		tmplPath string
		pubPath  string
	)
	flag.StringVar(&addr, "addr", ":"+cfg.Server.Port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", cfg.Web.TemplatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", cfg.Web.PublicDir, "public assets directory")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cartRepo, subscriberRepo, storeHealth, closeStore, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	events := observability.EventLogger(logger)

	cartSvc, err := services.NewCartService(services.CartServiceDeps{
		Repository: cartRepo,
		Clock:      time.Now,
		Logger:     events,
	})
	if err != nil {
		return err
	}
	subscriberSvc, err := services.NewSubscriberService(services.SubscriberServiceDeps{
		Repository: subscriberRepo,
		Logger:     events,
	})
	if err != nil {
		return err
	}
	catalogSvc, err := services.NewCatalogService(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	renderer, err := handlers.NewRenderer(tmplPath, cfg.Web.DevMode)
	if err != nil {
		return err
	}
	h, err := handlers.New(handlers.Deps{
		Renderer:    renderer,
		Cart:        cartSvc,
		Catalog:     catalogSvc,
		Subscribers: subscriberSvc,
	})
	if err != nil {
		return err
	}

	signingKey := []byte(cfg.Session.SigningKey)
	if len(signingKey) == 0 {
		// Ephemeral key: sessions won't survive a restart, which is fine for
		// local runs but SHOP_SESSION_SIGNING_KEY should be set in production.
		signingKey = []byte(time.Now().UTC().Format(time.RFC3339Nano))
		logger.Warn("session signing key not configured, using ephemeral key")
	}

	router := handlers.NewRouter(h, handlers.RouterConfig{
		Logger: logger,
		Session: mw.SessionConfig{
			SigningKey: signingKey,
			Secure:     cfg.Session.Secure,
		},
		PublicDir:   pubPath,
		StoreHealth: storeHealth,
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", cfg.Web.DevMode))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("server stopped")
	}
	return nil
}

// buildRepositories selects the Redis-backed store when a URL is configured
// and falls back to the in-memory store otherwise.
func buildRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.CartRepository, repositories.SubscriberRepository, func(context.Context) error, func(), error) {
	client, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if client == nil {
		logger.Info("redis not configured, using in-memory store")
		store := memoryrepo.NewStore()
		return memoryrepo.NewCartRepository(store), memoryrepo.NewSubscriberRepository(store), nil, func() {}, nil
	}

	cartRepo, err := redisrepo.NewCartRepository(client.Client)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	subscriberRepo, err := redisrepo.NewSubscriberRepository(client.Client)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("closing redis client", zap.Error(err))
		}
	}
	logger.Info("redis store connected")
	return cartRepo, subscriberRepo, client.Health, closeFn, nil
}
