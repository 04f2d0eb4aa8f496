package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	workerHandler WorkerHandler,
	entryHandler EntryHandler,
	payrollHandler PayrollHandler,
	syncHandler SyncHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewpay"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", workerHandler.List)
			r.Post("/", workerHandler.Create)
			r.Get("/{id}", workerHandler.Get)
			r.Put("/{id}", workerHandler.Update)
			r.Delete("/{id}", workerHandler.Delete)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", entryHandler.List)
			r.Post("/", entryHandler.Save)
			r.Get("/day", entryHandler.GetForDay)
			r.Get("/{id}", entryHandler.Get)
			r.Put("/{id}", entryHandler.Update)
			r.Delete("/{id}", entryHandler.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/monthly", payrollHandler.Monthly)
			r.Get("/monthly/all", payrollHandler.MonthlyAll)
		})

		r.Route("/sync", func(r chi.Router) {
			r.Post("/entries/{id}", syncHandler.PushEntry)
			r.Post("/month", syncHandler.PushMonth)
			r.Delete("/rows/{sheetID}", syncHandler.RemoveEntry)
		})
	})
	return r
}
