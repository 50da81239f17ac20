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
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	attendanceHandler AttendanceHandler,
	exceptionHandler ExceptionHandler,
	assignmentHandler AssignmentHandler,
	shiftHandler ShiftHandler,
	notificationHandler NotificationHandler,
	payrollInputHandler PayrollInputHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/punch", attendanceHandler.RecordPunch)
			r.Get("/employee/{employeeID}", attendanceHandler.GetForEmployee)
		})

		r.Route("/exceptions", func(r chi.Router) {
			r.Post("/", exceptionHandler.Create)
			r.Get("/", exceptionHandler.List)
			r.Get("/{id}", exceptionHandler.GetByID)
			r.Patch("/{id}/status", exceptionHandler.UpdateStatus)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", assignmentHandler.Create)
			r.Get("/", assignmentHandler.List)
			r.Get("/{id}", assignmentHandler.GetByID)
			r.Get("/employee/{employeeID}", assignmentHandler.FindForEmployee)
			r.Put("/{id}", assignmentHandler.Update)
			r.Post("/{id}/approve", assignmentHandler.Approve)
			r.Post("/{id}/reject", assignmentHandler.Reject)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", shiftHandler.Create)
			r.Get("/", shiftHandler.List)
			r.Get("/{id}", shiftHandler.GetByID)
			r.Put("/{id}", shiftHandler.Update)
		})

		r.Get("/notifications/employee/{employeeID}", notificationHandler.ListForEmployee)

		r.Get("/payroll-inputs/employee/{employeeID}", payrollInputHandler.GetPeriodSummary)
	})

	return r
}
