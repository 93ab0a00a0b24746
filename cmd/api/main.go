package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/config"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/blubridge/hrms-backend-go/internal/handler/http"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
	"github.com/blubridge/hrms-backend-go/internal/pkg/jwt"
	"github.com/blubridge/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/blubridge/hrms-backend-go/internal/service/attendance"
	auditService "github.com/blubridge/hrms-backend-go/internal/service/audit"
	authService "github.com/blubridge/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/blubridge/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/blubridge/hrms-backend-go/internal/service/employee"
	leaveService "github.com/blubridge/hrms-backend-go/internal/service/leave"
	payrollService "github.com/blubridge/hrms-backend-go/internal/service/payroll"
	reportService "github.com/blubridge/hrms-backend-go/internal/service/report"
	rewardService "github.com/blubridge/hrms-backend-go/internal/service/reward"
	teamService "github.com/blubridge/hrms-backend-go/internal/service/team"
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

	catalog := shift.DefaultCatalog()
	location := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	rewardRepo := postgresql.NewRewardRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, auditSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, catalog, auditSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, catalog, location, auditSvc)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, leaveRepo, location)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, auditSvc)
	rewardSvc := rewardService.NewRewardService(db, rewardRepo, employeeRepo, location, auditSvc)
	teamSvc := teamService.NewTeamService(teamRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, leaveRepo, attendanceSvc, attendanceRepo, location)
	reportSvc := reportService.NewReportService(attendanceSvc, leaveRepo, location)
	seeder := fixtures.NewSeeder(userRepo, teamRepo, employeeRepo, attendanceRepo, catalog, location)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Reward:     appHTTP.NewRewardHandler(rewardSvc),
		Team:       appHTTP.NewTeamHandler(teamSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
		Config:     appHTTP.NewConfigHandler(catalog),
		Seed:       appHTTP.NewSeedHandler(seeder),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
