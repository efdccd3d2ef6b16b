package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	attendanceHandler AttendanceHandler,
	summaryHandler SummaryHandler,
	dashboardHandler DashboardHandler,
	configHandler ConfigHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Record)
			r.Get("/date", attendanceHandler.ByDate)
			r.Get("/employee/{employeeId}", attendanceHandler.History)
			r.Get("/summary", summaryHandler.Daily)
			r.Get("/range", summaryHandler.Range)
			r.Get("/logs", attendanceHandler.Logs)
			r.Get("/status", attendanceHandler.Status)
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/", configHandler.Get)
			r.Put("/", configHandler.Update)
		})

		r.Get("/dashboard", dashboardHandler.Get)
	})

	return r
}
