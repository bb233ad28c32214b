package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/almanac-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/today
//	GET    /api/v1/jdn?date=&time=
//	GET    /api/v1/civil/{jdn}
//	GET    /api/v1/hijri?date=
//	GET    /api/v1/hijri/{jdn}
//	GET    /api/v1/weekday/{year}/{month}?n=&weekday=
//	GET    /api/v1/century/{year}
//	GET    /api/v1/calendar/{year}/{month}
//	GET    /api/v1/range?start=&end=
//	GET    /api/v1/observances[?kind=]
//	GET    /api/v1/observances/year/{year}
//	POST   /api/v1/observances        (API key)
//	DELETE /api/v1/observances/{id}   (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// ======================================================================
		// Conversions
		// ======================================================================
		r.Get("/today", handlers.GetToday)
		r.Get("/jdn", handlers.GetJDN)
		r.Get("/civil/{jdn}", handlers.GetCivil)
		r.Get("/hijri", handlers.GetHijriByDate)
		r.Get("/hijri/{jdn}", handlers.GetHijri)

		// ======================================================================
		// Calendar queries
		// ======================================================================
		r.Get("/weekday/{year}/{month}", handlers.GetNthWeekday)
		r.Get("/century/{year}", handlers.GetCentury)
		r.Get("/calendar/{year}/{month}", handlers.GetMonthCalendar)
		r.Get("/range", handlers.GetRange)

		// ======================================================================
		// Observances
		// ======================================================================
		r.Route("/observances", func(r chi.Router) {
			r.Get("/", handlers.ListObservances)
			r.Get("/year/{year}", handlers.GetYearObservances)

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(cfg, logger))
				r.Post("/", handlers.CreateObservance)
				r.Delete("/{id}", handlers.DeleteObservance)
			})
		})
	})

	return r
}
