package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"orbtag-server/config"
	"orbtag-server/game"
	"orbtag-server/lobby"
	"orbtag-server/loghandler"
	"orbtag-server/ws"
)

func main() {
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stderr, slog.LevelInfo)))

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found; using environment variables.", "tag", "main")
	}

	cfg := config.Load()
	slog.Info("configuration", "tag", "main",
		"min_players", cfg.MinPlayers,
		"cooldown_ms", cfg.CooldownDurationMS,
		"playing_ms", cfg.PlayingDurationMS,
		"tick_ms", cfg.TickRateMS,
		"ws_port", cfg.WSPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lb := lobby.New(cfg, game.NewProcessor(cfg))
	go lb.Run(ctx)

	hub := ws.NewHub(lb)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.WSPort),
		Handler:           newRouter(hub, lb),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Orb Tag server listening", "tag", "main", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen", "tag", "main", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, shutting down gracefully", "tag", "main")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server failed to shutdown gracefully", "tag", "main", "err", err)
	}
	<-lb.Done()
	slog.Info("shutdown complete", "tag", "main")
}

// StatsProvider reports the state of the running game.
type StatsProvider interface {
	Stats() (lobby.Stats, error)
}

func newRouter(hub *ws.Hub, stats StatsProvider) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ws", hub.ServeWS)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s, err := stats.Stats()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			slog.Warn("encode healthz response", "tag", "main", "err", err)
		}
	})
	return r
}
