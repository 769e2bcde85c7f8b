package handler

import (
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sumplot/sumplot/internal/service"
)

// SetupRouter creates the main Chi router for the calculation service.
// authService and historyService may be nil, in which case only the public
// calculation endpoint is mounted.
func SetupRouter(calcService service.ICalcService, authService service.IAuthService, historyService service.IHistoryService, db *sql.DB, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Logger: logs request details (method, path, latency, status).
	r.Use(middleware.Logger)
	// Recoverer: recovers from panics and returns a 500 instead of crashing.
	r.Use(middleware.Recoverer)

	// The form UI runs on a different port, so cross-origin requests must be
	// allowed. The calculation endpoint is public and stateless, hence any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any major browser
	}))

	calculateHandler := NewCalculateHandler(calcService, logger)
	healthHandler := NewHealthHandler(db, logger)

	r.Get("/healthz", healthHandler.Check)
	r.Post("/calculate", calculateHandler.Calculate)

	if authService != nil && historyService != nil {
		authHandler := NewAuthHandler(authService, logger)
		historyHandler := NewHistoryHandler(historyService, logger)
		authMiddleware := NewAuthMiddleware(authService, logger)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/calculations", historyHandler.CreateCalculation)
				r.Get("/calculations", historyHandler.ListCalculations)
			})
		})
	}

	return r
}
