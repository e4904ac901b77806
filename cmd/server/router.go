package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jobverse/jobverse-api/internal/api"
	"github.com/jobverse/jobverse-api/internal/api/middleware"
	"github.com/jobverse/jobverse-api/internal/api/shared"
)

// handlerDeps groups the route handlers the router mounts.
type handlerDeps struct {
	authHandler        *api.AuthHandler
	userHandler        *api.UserHandler
	jobHandler         *api.JobHandler
	applicationHandler *api.JobApplicationHandler
	diagnosticHandler  *api.DiagnosticTestHandler
	reservationHandler *api.ReservationHandler
	bannerHandler      *api.BannerHandler
	healthTipHandler   *api.HealthTipHandler
	paymentHandler     *api.PaymentHandler
}

// newRouter assembles the full route tree. Public reads stay open, user
// data sits behind token authentication, and catalog mutations plus the
// whole banner surface additionally require the admin role. Job mutations
// require ownership.
func newRouter(deps handlerDeps, authMw *middleware.AuthMiddleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/health", healthCheck)
	r.Post("/jwt", deps.authHandler.IssueToken)
	r.Post("/users", deps.userHandler.Create)
	r.Get("/jobs", deps.jobHandler.List)
	r.Get("/job/{id}", deps.jobHandler.Get)
	r.Get("/tests", deps.diagnosticHandler.List)
	r.Get("/test/{id}", deps.diagnosticHandler.Get)
	r.Post("/create-payment-intent", deps.paymentHandler.CreateIntent)
	r.Get("/health-tips", deps.healthTipHandler.List)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.Authenticate)

		r.Get("/users/admin/{email}", deps.userHandler.AdminStatus)

		r.Get("/my-jobs", deps.jobHandler.ListMine)
		r.Post("/jobs", deps.jobHandler.Create)
		r.Get("/applied-jobs", deps.applicationHandler.ListApplied)
		r.Post("/job-applications", deps.applicationHandler.Create)

		r.Get("/reservations", deps.reservationHandler.List)
		r.Post("/reservations", deps.reservationHandler.Create)
		r.Delete("/reservation/{id}", deps.reservationHandler.Delete)

		// Owner-only job mutations
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireJobOwner)
			r.Patch("/job/{id}", deps.jobHandler.Update)
			r.Delete("/job/{id}", deps.jobHandler.Delete)
		})

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAdmin)
			r.Get("/users", deps.userHandler.List)
			r.Post("/tests", deps.diagnosticHandler.Create)
			r.Delete("/test/{id}", deps.diagnosticHandler.Delete)
			r.Get("/banners", deps.bannerHandler.List)
			r.Post("/banners", deps.bannerHandler.Create)
			r.Patch("/banner/{id}", deps.bannerHandler.SetActive)
			r.Delete("/banner/{id}", deps.bannerHandler.Delete)
		})
	})

	return r
}

// healthCheck answers liveness probes.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
