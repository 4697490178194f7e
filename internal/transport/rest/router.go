package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/smartexpense/expense-tracker/internal/auth"
	"github.com/smartexpense/expense-tracker/internal/category"
	"github.com/smartexpense/expense-tracker/internal/entry"
	"github.com/smartexpense/expense-tracker/internal/expense"
	"github.com/smartexpense/expense-tracker/internal/report"
	"github.com/smartexpense/expense-tracker/internal/transport/middleware"
	"github.com/smartexpense/expense-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth     *auth.Handler
	Expense  *expense.Handler
	Category *category.Handler
	Report   *report.Handler
	Entry    *entry.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Device pairing routes
		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/pair", h.Auth.Pair)
				sr.Post("/refresh", h.Auth.RefreshToken)
			})
		}

		// Public categories route (the entry form's picker needs it before
		// pairing completes)
		if h.Category != nil {
			r.Get("/categories", h.Category.GetCategories)
		}

		if h.Entry != nil {
			r.Post("/entry/validate", h.Entry.Validate)
		}

		if h.Auth != nil {
			// Protected routes that require a paired device
			r.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)

				if h.Expense != nil {
					pr.Route("/expenses", func(er chi.Router) {
						er.Post("/", h.Expense.CreateExpense)
						er.Get("/", h.Expense.ListExpenses)
						er.Get("/summary", h.Expense.GetSummary)
						er.Get("/today/total", h.Expense.GetTodaysTotal)
						er.Get("/{id}", h.Expense.GetExpense)
						er.Put("/{id}", h.Expense.UpdateExpense)
						er.Delete("/{id}", h.Expense.DeleteExpense)
					})
				}

				if h.Report != nil {
					pr.Route("/reports", func(rr chi.Router) {
						rr.Get("/weekly", h.Report.GetWeeklyReport)
						rr.Post("/export", h.Report.ExportReport)
					})
				}
			})
		}
	})
}
