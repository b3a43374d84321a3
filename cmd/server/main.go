package main

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/config"
	"github.com/stargroups/aram-lobby-backend/internal/httpapi"
	"github.com/stargroups/aram-lobby-backend/internal/room"
	"github.com/stargroups/aram-lobby-backend/internal/stats"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	var store stats.Store
	if cfg.DatabaseURL != "" {
		store, err = stats.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open stats store", zap.Error(err))
		}
		log.Info("stats store connected")
	} else {
		store = stats.NewMemoryStore()
		log.Warn("no DATABASE_URL, player stats are kept in memory only")
	}

	coordinator := room.New(context.Background(), store, log, room.Options{
		ResetPassword: cfg.ResetPassword,
		BanTimeout:    cfg.BanTimeout,
		Countdown:     cfg.RoundCountdown,
	})

	handler := httpapi.SetupRoutes(coordinator, store, log)

	log.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
