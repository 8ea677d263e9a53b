package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/handlers"
)

func SetupRoutes(r chi.Router, public *handlers.PublicHandler, user *handlers.UserHandler, journal *handlers.JournalHandler) {
	// Open routes
	r.Route("/public", func(r chi.Router) {
		r.Get("/health-check", public.HealthCheck)
		r.Post("/create-user", public.CreateUser)
	})

	// Authenticated routes; identity comes from the request principal
	r.Route("/user", func(r chi.Router) {
		r.Put("/", user.Update)
		r.Delete("/", user.Delete)
	})

	r.Route("/journal", func(r chi.Router) {
		r.Get("/", journal.List)
		r.Post("/", journal.Create)
		r.Get("/id/{id}", journal.GetByID)
		r.Put("/id/{username}/{id}", journal.UpdateByID)
		r.Delete("/id/{username}/{id}", journal.DeleteByID)
	})
}
