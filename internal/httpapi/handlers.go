package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stargroups/aram-lobby-backend/internal/stats"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetStats exposes the persisted record behind a nickname, mostly for the
// client's profile page.
func GetStats(store stats.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nickname := chi.URLParam(r, "nickname")
		if nickname == "" {
			http.Error(w, "missing nickname", http.StatusBadRequest)
			return
		}

		rec, err := store.Get(r.Context(), nickname)
		if errors.Is(err, stats.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("stats lookup failed", zap.String("nickname", nickname), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	}
}
