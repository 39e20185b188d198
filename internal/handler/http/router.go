package http

import (
	"log/slog"
	"os"

	"github.com/dealerdesk/backoffice-go/internal/handler/http/middleware"
	"github.com/dealerdesk/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	adjustmentHandler AdjustmentHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
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
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punches", attendanceHandler.ImportPunches)
				r.Get("/monthly", attendanceHandler.GetMonthlyAttendance)
				r.Get("/rules", attendanceHandler.GetRules)
				r.Get("/holidays", attendanceHandler.ListHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/rules", attendanceHandler.UpdateRules)
					r.Post("/holidays", attendanceHandler.CreateHoliday)
					r.Delete("/holidays/{id}", attendanceHandler.DeleteHoliday)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", adjustmentHandler.ListAdjustments)
				r.Get("/{id}", adjustmentHandler.GetAdjustment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", adjustmentHandler.CreateAdjustment)
					r.Put("/{id}", adjustmentHandler.UpdateAdjustment)
					r.Delete("/{id}", adjustmentHandler.DeleteAdjustment)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/records", payrollHandler.ListRecords)
				r.Get("/records/{id}", payrollHandler.GetRecord)
				r.Get("/summary", payrollHandler.GetSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/calculate", payrollHandler.CalculatePayroll)
					r.Post("/finalize", payrollHandler.FinalizeRecords)
					r.Delete("/records/{id}", payrollHandler.DeleteRecord)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/payroll", reportHandler.ExportPayroll)
				r.Get("/attendance", reportHandler.ExportAttendance)
			})
		})
	})

	return r
}
