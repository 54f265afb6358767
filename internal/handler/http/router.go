package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/meridianhr/payroll-backend-go/internal/config"
	"github.com/meridianhr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	salaryHandler SalaryHandler,
	payrollHandler PayrollHandler,
	financeHandler FinanceHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Get("/{id}/salary-structures", salaryHandler.ListEmployeeStructures)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Post("/{id}/salary-structures", salaryHandler.AssignComponent)
					r.Put("/{id}/salary-structures/{assignmentID}/end", salaryHandler.EndAssignment)
					r.Put("/{id}/salary-structures/{assignmentID}/deactivate", salaryHandler.DeactivateAssignment)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/grades", func(r chi.Router) {
				r.Get("/", masterHandler.ListGrades)
				r.Get("/{id}", masterHandler.GetGrade)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateGrade)
					r.Put("/{id}", masterHandler.UpdateGrade)
					r.Delete("/{id}", masterHandler.DeleteGrade)
				})
			})

			r.Route("/salary-components", func(r chi.Router) {
				r.Get("/", salaryHandler.ListComponents)
				r.Get("/{id}", salaryHandler.GetComponent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", salaryHandler.CreateComponent)
					r.Put("/{id}", salaryHandler.UpdateComponent)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/runs/{year}", payrollHandler.ListRuns)
				r.Get("/runs/{month}/{year}/details", payrollHandler.GetRun)
				r.Get("/runs/{month}/{year}/items", payrollHandler.ListRunItems)
				r.Get("/runs/{month}/{year}/items/{employeeID}", payrollHandler.ListEmployeeRunItems)
				r.Get("/runs/{month}/{year}/payslip/{employeeID}", payrollHandler.DownloadPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", payrollHandler.GenerateRun)
					r.Post("/runs/{month}/{year}/finalize", payrollHandler.FinalizeRun)
				})
			})

			r.Route("/finance", func(r chi.Router) {
				r.Post("/snapshots", financeHandler.SaveSnapshot)
				r.Get("/snapshots", financeHandler.History)
				r.Get("/snapshots/latest", financeHandler.Latest)
				r.Get("/summary", financeHandler.Summary)
				r.Get("/zakat/{year}", financeHandler.YearlyZakat)
				r.Delete("/snapshots/{id}", financeHandler.DeleteSnapshot)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/trend", dashboardHandler.YearlyTrend)
				r.Get("/cost-by-dept", dashboardHandler.DepartmentCosts)
				r.Get("/recent-logs", dashboardHandler.RecentChanges)
				r.Get("/overview", dashboardHandler.Overview)
			})
		})
	})

	return r
}
