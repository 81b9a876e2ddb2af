package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/rogerio-castellano/lims-tracker/docs"
	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/lims-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/lims-tracker/internal/http/rate_limiter"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	// Logger is the base for request scoped loggers; nil discards logs.
	Logger *zerolog.Logger
	// Limiter throttles /api and the dashboard per client IP; nil disables it.
	Limiter *rl.Limiter
	// InternalKey exempts API calls made by the dashboard from the limiter.
	InternalKey string
	// Issuer enables bearer auth on API writes; nil leaves the API open.
	Issuer *auth.TokenIssuer
	// Dashboard is mounted at / when set.
	Dashboard http.Handler
}

func NewRouter(opts Options) http.Handler {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.RateLimit(opts.Limiter, opts.InternalKey))

		r.Post("/login", handlers.LoginHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

		r.Group(func(r chi.Router) {
			if opts.Issuer != nil {
				r.Use(mw.RequireWriteAuth(opts.Issuer))
			}

			r.Get("/users", handlers.GetUsersHandler)
			r.Post("/users", handlers.CreateUserHandler)
			r.Get("/users/{id}", handlers.GetUserByIDHandler)

			r.Get("/sops", handlers.GetSOPsHandler)
			r.Post("/sops", handlers.CreateSOPHandler)
			r.Get("/sops/{id}", handlers.GetSOPByIDHandler)
			r.Put("/sops/{id}", handlers.UpdateSOPHandler)
			r.Get("/version-changes", handlers.GetVersionChangesHandler)

			r.Get("/locations", handlers.GetLocationsHandler)
			r.Post("/locations", handlers.CreateLocationHandler)
			r.Get("/locations/{id}", handlers.GetLocationByIDHandler)

			r.Get("/warehouses", handlers.GetWarehousesHandler)
			r.Post("/warehouses", handlers.CreateWarehouseHandler)
			r.Get("/warehouses/{id}", handlers.GetWarehouseByIDHandler)

			r.Get("/equipment", handlers.GetEquipmentHandler)
			r.Post("/equipment", handlers.CreateEquipmentHandler)
			r.Get("/equipment/{id}", handlers.GetEquipmentByIDHandler)

			r.Get("/samples", handlers.GetSamplesHandler)
			r.Post("/samples", handlers.CreateSampleHandler)
			r.Post("/samples/import", handlers.ImportSamplesHandler)
			r.Get("/samples/{id}", handlers.GetSampleByIDHandler)

			r.Get("/tests", handlers.GetTestsHandler)
			r.Post("/tests", handlers.CreateTestHandler)
			r.Get("/tests/{id}", handlers.GetTestByIDHandler)

			r.Get("/sample-test-links", handlers.GetResultsHandler)
			r.Post("/sample-test-links", handlers.CreateResultHandler)
			r.Get("/sample-test-links/{id}", handlers.GetResultByIDHandler)

			r.Get("/maintenance-logs", handlers.GetMaintenanceLogsHandler)
			r.Post("/maintenance-logs", handlers.CreateMaintenanceLogHandler)
			r.Get("/maintenance-logs/{id}", handlers.GetMaintenanceLogByIDHandler)

			r.Get("/reagents", handlers.GetReagentsHandler)
			r.Post("/reagents", handlers.CreateReagentHandler)
			r.Get("/reagents/{id}", handlers.GetReagentByIDHandler)

			r.Get("/test-reagent-links", handlers.GetTestReagentLinksHandler)
			r.Post("/test-reagent-links", handlers.CreateTestReagentLinkHandler)
			r.Get("/test-reagent-links/{id}", handlers.GetTestReagentLinkByIDHandler)

			r.Get("/test-equipment-links", handlers.GetTestEquipmentLinksHandler)
			r.Post("/test-equipment-links", handlers.CreateTestEquipmentLinkHandler)
			r.Get("/test-equipment-links/{id}", handlers.GetTestEquipmentLinkByIDHandler)
		})
	})

	if opts.Dashboard != nil {
		// each page load fans out into internal API calls; the visitor is limited here instead
		r.Mount("/", mw.RateLimit(opts.Limiter, "")(opts.Dashboard))
	}
	return r
}
