package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/hotelops/hotel-operations/internal/auth"
	"github.com/hotelops/hotel-operations/internal/candidate"
	"github.com/hotelops/hotel-operations/internal/dailyreport"
	"github.com/hotelops/hotel-operations/internal/operational"
	"github.com/hotelops/hotel-operations/internal/org"
	"github.com/hotelops/hotel-operations/internal/report"
	"github.com/hotelops/hotel-operations/internal/transport/middleware"
	"github.com/hotelops/hotel-operations/internal/transport/swagger"
	"github.com/hotelops/hotel-operations/internal/user"
)

// Handlers bundles every mounted handler so RegisterAllRoutes stays a single
// wiring point.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Report      *report.Handler
	DailyReport *dailyreport.Handler
	Candidate   *candidate.Handler
	Org         *org.Handler
	Operational *operational.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/auth/me", h.Auth.Me)

			pr.Route("/expense-reports", func(er chi.Router) {
				er.Post("/", h.Report.Create)
				er.Get("/", h.Report.List)
				er.Get("/stats", h.Report.GetStats)
				er.Get("/{id}", h.Report.Get)
				er.Put("/{id}", h.Report.Update)
				er.Delete("/{id}", h.Report.Delete)
				er.Put("/{id}/submit", h.Report.Submit)

				er.Group(func(mr chi.Router) {
					mr.Use(h.Auth.RequireElevated())
					mr.Put("/{id}/approve", h.Report.Decide)
				})
			})

			pr.Route("/daily-reports", func(dr chi.Router) {
				dr.Post("/", h.DailyReport.Create)
				dr.Get("/", h.DailyReport.List)
				dr.Get("/stats", h.DailyReport.GetStats)
				dr.Get("/{id}", h.DailyReport.Get)
				dr.Put("/{id}", h.DailyReport.Update)
				dr.Delete("/{id}", h.DailyReport.Delete)
				dr.Put("/{id}/submit", h.DailyReport.Submit)

				dr.Group(func(mr chi.Router) {
					mr.Use(h.Auth.RequireElevated())
					mr.Put("/{id}/approve", h.DailyReport.Decide)
				})
			})

			pr.Route("/candidates", func(cr chi.Router) {
				cr.Post("/", h.Candidate.Create)
				cr.Get("/", h.Candidate.List)
				cr.Get("/{id}", h.Candidate.Get)
				cr.Put("/{id}", h.Candidate.Update)
				cr.Delete("/{id}", h.Candidate.Delete)
				cr.Get("/{id}/cv", h.Candidate.DownloadCV)
				cr.Get("/{id}/comments", h.Candidate.ListComments)
				cr.Post("/{id}/comments", h.Candidate.AddComment)
				cr.Delete("/{id}/comments/{commentId}", h.Candidate.DeleteComment)
			})

			pr.Get("/departments", h.Org.ListDepartments)
			pr.Get("/locations", h.Org.ListLocations)

			pr.Route("/operational", func(or chi.Router) {
				or.Get("/stats", h.Operational.GetStats)
				or.Get("/revenue", h.Operational.GetRevenue)
				or.Get("/occupancy", h.Operational.GetOccupancy)
				or.Get("/revpar", h.Operational.GetRevPAR)
				or.Get("/expenses", h.Operational.GetDepartmentExpenses)
				or.Get("/revenue-mix", h.Operational.GetRevenueMix)
				or.Get("/performance", h.Operational.GetPerformance)
			})

			pr.Route("/users", func(ur chi.Router) {
				ur.Group(func(ar chi.Router) {
					ar.Use(h.Auth.RequireUserAdmin())
					ar.Get("/", h.User.List)
					ar.Get("/{id}", h.User.Get)
					ar.Put("/{id}", h.User.Update)
					ar.Patch("/{id}/deactivate", h.User.Deactivate)
				})

				// Account creation and removal stay with the master role.
				ur.Group(func(mr chi.Router) {
					mr.Use(h.Auth.RequireMaster())
					mr.Post("/", h.User.Create)
					mr.Delete("/{id}", h.User.Delete)
				})
			})
		})
	})
}
