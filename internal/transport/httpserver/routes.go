package httpserver

import (
	"net/http"

	"protein-tracker/internal/config"
	"protein-tracker/internal/transport/httpserver/handler"
	"protein-tracker/internal/transport/httpserver/middleware"
	"protein-tracker/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, sessions middleware.SessionResolver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewSessions(cfg.Session, sessions, log).Middleware)

			r.Get("/foods", handlers.ListFoods)
			r.Post("/foods", handlers.CreateFood)
			r.Get("/foods/{id}", handlers.GetFood)
			r.Delete("/foods/{id}", handlers.DeleteFood)

			r.Get("/meals", handlers.ListMeals)
			r.Post("/meals", handlers.CreateMeal)
			r.Get("/meals/{id}", handlers.GetMeal)
			r.Delete("/meals/{id}", handlers.DeleteMeal)

			r.Get("/consumed-meals", handlers.ListConsumedMeals)
			r.Post("/consumed-meals", handlers.LogConsumedMeal)
			r.Delete("/consumed-meals/{id}", handlers.DeleteConsumedMeal)

			r.Get("/daily-goal", handlers.GetDailyGoal)
			r.Put("/daily-goal", handlers.SetDailyGoal)
			r.Post("/daily-goal", handlers.SetDailyGoal)
			r.Get("/daily-goal/summary", handlers.DailySummary)

			r.Get("/week-progress", handlers.WeekProgress)
		})
	})

	return r
}
