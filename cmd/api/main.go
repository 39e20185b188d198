package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dealerdesk/backoffice-go/internal/config"
	appHTTP "github.com/dealerdesk/backoffice-go/internal/handler/http"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/dealerdesk/backoffice-go/internal/pkg/jwt"
	"github.com/dealerdesk/backoffice-go/internal/repository/postgresql"
	adjustmentService "github.com/dealerdesk/backoffice-go/internal/service/adjustment"
	attendanceService "github.com/dealerdesk/backoffice-go/internal/service/attendance"
	authService "github.com/dealerdesk/backoffice-go/internal/service/auth"
	employeeService "github.com/dealerdesk/backoffice-go/internal/service/employee"
	payrollService "github.com/dealerdesk/backoffice-go/internal/service/payroll"
	reportService "github.com/dealerdesk/backoffice-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	// Services
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(db, adjustmentRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, adjustmentRepo)
	reportSvc := reportService.NewReportService(payrollSvc, attendanceSvc)

	// Handlers
	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtSvc,
		authHandler,
		employeeHandler,
		attendanceHandler,
		adjustmentHandler,
		payrollHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
