// Package api assembles the HTTP surface: routes, middleware chain, and the
// wiring from handlers down to the Postgres repositories.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/instituto-alma/server/internal/api/handlers"
	"github.com/instituto-alma/server/internal/api/middleware"
	"github.com/instituto-alma/server/internal/auth"
	"github.com/instituto-alma/server/internal/config"
	"github.com/instituto-alma/server/internal/domain/admins"
	"github.com/instituto-alma/server/internal/domain/donations"
	"github.com/instituto-alma/server/internal/domain/events"
	"github.com/instituto-alma/server/internal/domain/ombudsman"
	"github.com/instituto-alma/server/internal/domain/transparency"
	"github.com/instituto-alma/server/internal/domain/volunteers"
	"github.com/instituto-alma/server/internal/metrics"
	"github.com/instituto-alma/server/internal/storage/postgres"
	"github.com/instituto-alma/server/internal/uploads"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, repo *postgres.Repository, files *uploads.Store) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	donationsHandler := handlers.NewDonationsHandler(donations.NewService(repo.Donations(), logger))
	eventsHandler := handlers.NewEventsHandler(events.NewService(repo.Events(), logger))
	ombudsmanHandler := handlers.NewOmbudsmanHandler(ombudsman.NewService(repo.Ombudsman(), logger))
	transparencyHandler := handlers.NewTransparencyHandler(transparency.NewService(repo.Transparency(), files, logger))
	volunteersHandler := handlers.NewVolunteersHandler(volunteers.NewService(repo.Volunteers(), logger))
	authHandler := handlers.NewAuthHandler(admins.NewService(repo.Admins(), logger), jwtManager)

	requireAdmin := middleware.RequireAdmin(jwtManager)

	mux := http.NewServeMux()
	mux.Handle("/{$}", handlers.Root())
	mux.Handle("/healthz", handlers.Healthz(repo))
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", files.Handler()))

	mux.Handle("/doacoes", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(donationsHandler.Create),
		http.MethodGet:  http.HandlerFunc(donationsHandler.List),
	}))
	mux.Handle("/doacoes/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(donationsHandler.GetByID),
		http.MethodDelete: http.HandlerFunc(donationsHandler.Delete),
	}))

	mux.Handle("/eventos", methodMux(map[string]http.Handler{
		http.MethodPost: requireAdmin(http.HandlerFunc(eventsHandler.Create)),
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
	}))
	mux.Handle("/eventos/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(eventsHandler.GetByID),
		http.MethodPut:    requireAdmin(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: requireAdmin(http.HandlerFunc(eventsHandler.Delete)),
	}))

	mux.Handle("/ouvidoria", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(ombudsmanHandler.Create),
		http.MethodGet:  http.HandlerFunc(ombudsmanHandler.List),
	}))
	mux.Handle("/ouvidoria/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(ombudsmanHandler.GetByID),
		http.MethodDelete: http.HandlerFunc(ombudsmanHandler.Delete),
	}))

	mux.Handle("/transparencia", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(transparencyHandler.Create),
		http.MethodGet:  http.HandlerFunc(transparencyHandler.List),
	}))
	mux.Handle("/transparencia/{id}", methodMux(map[string]http.Handler{
		http.MethodDelete: http.HandlerFunc(transparencyHandler.Delete),
	}))

	mux.Handle("/voluntarios", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(volunteersHandler.Create),
		http.MethodGet:  requireAdmin(http.HandlerFunc(volunteersHandler.List)),
	}))
	mux.Handle("/voluntarios/{id}", methodMux(map[string]http.Handler{
		http.MethodDelete: requireAdmin(http.HandlerFunc(volunteersHandler.Delete)),
	}))

	mux.Handle("/auth/register", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Register),
	}))
	mux.Handle("/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.Instrument(handler)
	handler = middleware.RequestLogging(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
