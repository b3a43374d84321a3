package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/room"
	"github.com/stargroups/aram-lobby-backend/internal/stats"
	"github.com/stargroups/aram-lobby-backend/internal/ws"
)

func SetupRoutes(c *room.Coordinator, store stats.Store, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(c, log))
	r.Get("/stats/{nickname}", GetStats(store, log))
	return r
}
