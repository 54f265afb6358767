package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/config"
	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	appHTTP "github.com/meridianhr/payroll-backend-go/internal/handler/http"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/cron"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/jwt"
	"github.com/meridianhr/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/meridianhr/payroll-backend-go/internal/service/auth"
	dashboardService "github.com/meridianhr/payroll-backend-go/internal/service/dashboard"
	employeeService "github.com/meridianhr/payroll-backend-go/internal/service/employee"
	financeService "github.com/meridianhr/payroll-backend-go/internal/service/finance"
	"github.com/meridianhr/payroll-backend-go/internal/service/master"
	payrollService "github.com/meridianhr/payroll-backend-go/internal/service/payroll"
	salaryService "github.com/meridianhr/payroll-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	gradeRepo := postgresql.NewGradeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	financeRepo := postgresql.NewFinanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	auth := authService.NewAuthService(userRepo, jwtService)
	employees := employeeService.NewEmployeeService(employeeRepo, postgresql.NewAuditRecorder(auditRepo))
	masterData := master.NewMasterService(departmentRepo, gradeRepo)
	salaries := salaryService.NewSalaryService(salaryRepo, employeeRepo)
	// An empty status list means every employee is swept into generation,
	// resigned ones included; final-settlement runs depend on that.
	payroll := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, salaryRepo, []employee.EmploymentStatus{})
	finances := financeService.NewFinanceService(financeRepo)
	dashboards := dashboardService.NewDashboardService(dashboardRepo, auditRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("draft-run-reminder", 24*time.Hour, cron.DraftRunReminder(payrollRepo))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(auth, jwtService),
		appHTTP.NewEmployeeHandler(employees),
		appHTTP.NewMasterHandler(masterData),
		appHTTP.NewSalaryHandler(salaries),
		appHTTP.NewPayrollHandler(payroll),
		appHTTP.NewFinanceHandler(finances),
		appHTTP.NewDashboardHandler(dashboards),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
