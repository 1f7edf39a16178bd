package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/config"
	appHTTP "github.com/bambooclone/hr-backend-go/internal/handler/http"
	"github.com/bambooclone/hr-backend-go/internal/pkg/cron"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/bambooclone/hr-backend-go/internal/pkg/email"
	"github.com/bambooclone/hr-backend-go/internal/pkg/jwt"
	"github.com/bambooclone/hr-backend-go/internal/pkg/oauth"
	"github.com/bambooclone/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bambooclone/hr-backend-go/internal/service/attendance"
	authService "github.com/bambooclone/hr-backend-go/internal/service/auth"
	dashboardService "github.com/bambooclone/hr-backend-go/internal/service/dashboard"
	departmentService "github.com/bambooclone/hr-backend-go/internal/service/department"
	employeeService "github.com/bambooclone/hr-backend-go/internal/service/employee"
	leaveService "github.com/bambooclone/hr-backend-go/internal/service/leave"
	tenantService "github.com/bambooclone/hr-backend-go/internal/service/tenant"
	timesheetService "github.com/bambooclone/hr-backend-go/internal/service/timesheet"
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
	tenantRepo := postgresql.NewTenantRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		fmt.Println("Error initializing email service:", err)
		return
	}

	authSvc := authService.NewAuthService(userRepo, invitationRepo, jwtSvc, googleSvc)
	tenantSvc := tenantService.NewTenantService(tenantRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, invitationRepo, tenantRepo, emailSvc, cfg)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveTypeRepo, leaveRequestRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(txManager, clientRepo, projectRepo, timeEntryRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, departmentRepo, leaveRequestRepo, attendanceRepo)

	if err := authSvc.SeedSuperAdmin(context.Background(), cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		slog.Error("Failed to seed super admin", "error", err)
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Tenant:     appHTTP.NewTenantHandler(tenantSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, tenantRepo).RegisterJobs(scheduler)
	cron.NewTimesheetJobs(timeEntryRepo, employeeRepo, tenantRepo, emailSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
