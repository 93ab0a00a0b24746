package http

import (
	"log/slog"
	"os"

	"github.com/blubridge/hrms-backend-go/internal/config"
	"github.com/blubridge/hrms-backend-go/internal/handler/http/middleware"
	"github.com/blubridge/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Leave      LeaveHandler
	Reward     RewardHandler
	Team       TeamHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Audit      AuditHandler
	Config     ConfigHandler
	Seed       SeedHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "blubridge-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Post("/auth/login", h.Auth.Login)
		r.Post("/seed", h.Seed.Seed)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/shifts", h.Config.ListShifts)
				r.Get("/shift/{type}", h.Config.GetShift)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// HR manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Put("/{id}/shift", h.Employee.UpdateShift)
					r.Put("/{id}/salary", h.Employee.UpdateSalary)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/stats", h.Attendance.Stats)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.Payroll.ListMonth)
				r.Get("/summary/{month}", h.Payroll.Summary)
				r.Get("/{employeeID}", h.Payroll.GetEmployee)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)

				// Team lead, HR manager, or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{id}/approve", h.Leave.Approve)
					r.Put("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/star-rewards", func(r chi.Router) {
				r.Get("/leaderboard", h.Reward.Leaderboard)
				r.Get("/history/{employeeID}", h.Reward.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/award", h.Reward.Award)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Get("/{id}", h.Team.Get)
			})
			r.Get("/departments", h.Team.ListDepartments)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.Stats)
				r.Get("/leave-list", h.Dashboard.LeaveList)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/attendance", h.Report.Attendance)
				r.Get("/leaves", h.Report.Leaves)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/audit-logs", h.Audit.List)
			})
		})
	})
	return r
}
