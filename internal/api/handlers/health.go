package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/instituto-alma/server/internal/api/respond"
)

// Pinger reports whether the backing datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Root answers the public liveness probe the institute's frontend polls.
func Root() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("API do Instituto funcionando!"))
	})
}

// Healthz reports process and database health for deployment probes.
func Healthz(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			respond.Error(w, r, http.StatusServiceUnavailable, "unhealthy", err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
