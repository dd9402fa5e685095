package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hygiene-check-api/internal/dto"
	"github.com/hygiene-check-api/internal/middleware"
)

// Handlers - набор обработчиков, которые подключает роутер
type Handlers struct {
	Offices    *OfficeHandler
	Employees  *EmployeeHandler
	Records    *RecordHandler
	Dashboard  *DashboardHandler
	Categories *CategoryHandler
}

// Router настраивает маршруты API
type Router struct {
	handlers       Handlers
	allowedOrigins []string
	logger         *slog.Logger
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		handlers:       handlers,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer(r.logger))
	mux.Use(middleware.Logger(r.logger))
	mux.Use(chiMiddleware.CleanPath)
	mux.Use(chiMiddleware.StripSlashes)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:         300,
	}))

	health := newBase(r.logger)
	mux.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		health.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
	})

	mux.Route("/api", func(api chi.Router) {
		api.Get("/categories", r.handlers.Categories.List)

		api.Route("/offices", func(or chi.Router) {
			or.Get("/", r.handlers.Offices.List)
			or.Post("/", r.handlers.Offices.Create)
			or.Get("/{code}", r.handlers.Offices.Get)
			or.Delete("/{code}", r.handlers.Offices.Delete)
		})
		// старое имя филиалов во фронтенде
		api.Get("/branches", r.handlers.Offices.List)

		api.Route("/employees", func(er chi.Router) {
			er.Get("/", r.handlers.Employees.List)
			er.Post("/", r.handlers.Employees.Create)
			er.Get("/{code}", r.handlers.Employees.Get)
			er.Delete("/{code}", r.handlers.Employees.Delete)
		})

		api.Route("/records", func(rr chi.Router) {
			rr.Get("/", r.handlers.Records.List)
			rr.Post("/submit", r.handlers.Records.Submit)
			rr.Get("/calendar_status", r.handlers.Records.CalendarStatus)
			rr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", r.handlers.Records.Get)
				ir.Delete("/", r.handlers.Records.Delete)
				ir.Post("/clear", r.handlers.Records.Clear)
				ir.Post("/supervisor_confirm", r.handlers.Records.Confirm)
				ir.Delete("/supervisor_confirm", r.handlers.Records.Unconfirm)
			})
		})

		api.Get("/dashboard", r.handlers.Dashboard.Get)
		api.Get("/dashboard/export", r.handlers.Dashboard.Export)
	})

	return mux
}
