package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/bestelerim/internal/config"
	"github.com/Vovarama1992/bestelerim/internal/delivery"
	ws "github.com/Vovarama1992/bestelerim/internal/delivery/ws"
	"github.com/Vovarama1992/bestelerim/internal/domain"
	"github.com/Vovarama1992/bestelerim/internal/infra"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	defer zcore.Sync()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// POSTGRES (optional)
	var store ports.EngagementStore
	if cfg.EngagementEnabled() {
		var release func()
		store, release, err = infra.ConnectEngagementStore(ctx, cfg.DatabaseURL, zl)
		defer release()
		if err != nil {
			// keep serving the catalog; /api/ reports the store state
			zl.Log(logger.LogEntry{
				Level:   "error",
				Message: "postgres unavailable; engagement degraded",
				Fields:  map[string]any{"store_configured": store != nil},
				Error:   err,
			})
		}
	} else {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "DATABASE_URL is not set; plays, likes and stats are disabled",
		})
	}

	// SERVICES
	contents := infra.NewGitHubContentsClient(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.RemoteTimeout)
	fetcher := domain.NewCatalogFetcher(contents, cfg.Repo, cfg.Branch, cfg.RawContentURL)
	catalog := domain.NewCatalogService(fetcher, store, cfg.StatsLimit, zl)

	// WS HUB
	hub := ws.NewHub()
	go ws.Forward(ctx, hub, catalog.Events())

	// HANDLERS
	hCatalog := delivery.NewCatalogHandler(catalog, zl)
	hEngagement := delivery.NewEngagementHandler(catalog, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hCatalog, hEngagement)

	r.Get("/ws", ws.WSHandler(hub))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "server started",
			Fields: map[string]any{
				"port":       cfg.Port,
				"repo":       cfg.Repo,
				"branch":     cfg.Branch,
				"engagement": cfg.EngagementEnabled(),
			},
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Log(logger.LogEntry{
				Level:   "error",
				Message: "server crashed",
				Error:   err,
			})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "forced shutdown",
			Error:   err,
		})
		return
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server stopped",
	})
}
