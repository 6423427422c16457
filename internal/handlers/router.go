package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mw "github.com/GarwanshiJain/ecommerce.repo/internal/middleware"
	"github.com/GarwanshiJain/ecommerce.repo/internal/platform/metrics"
)

// RouterConfig carries the cross-cutting pieces the router wires in front of
// the handlers.
type RouterConfig struct {
	Logger    *zap.Logger
	Session   mw.SessionConfig
	PublicDir string

	// StoreHealth, when set, is checked by /healthz.
	StoreHealth func(ctx context.Context) error
}

// NewRouter assembles the middleware stack and all storefront routes.
func NewRouter(h *Handlers, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.HTMX)
	r.Use(mw.Session(cfg.Session))
	r.Use(mw.Logger(logger))
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if cfg.StoreHealth != nil {
			if err := cfg.StoreHealth(r.Context()); err != nil {
				logger.Warn("store health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("store unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	if cfg.PublicDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(cfg.PublicDir, "assets"))))
		r.Handle("/assets/*", assets)
	}

	r.Get("/", h.HomeHandler)
	r.Get("/product", h.ProductHandler)

	r.Get("/cart", h.CartHandler)
	r.Get("/cart/table", h.CartTableFrag)
	r.Post("/cart/items", h.CartAddHandler)
	r.Post("/cart/items/{id}/remove", h.CartRemoveHandler)
	r.Post("/cart/clear", h.CartClearHandler)

	r.Post("/newsletter", h.NewsletterHandler)

	return r
}
