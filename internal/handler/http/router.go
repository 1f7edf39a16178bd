package http

import (
	"log/slog"
	"os"

	"github.com/bambooclone/hr-backend-go/internal/config"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/middleware"
	"github.com/bambooclone/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Tenant     TenantHandler
	Department DepartmentHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Timesheet  TimesheetHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/invitations/accept", h.Auth.AcceptInvitation)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Platform operator only
			r.Route("/tenants", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Post("/", h.Tenant.Create)
				r.Get("/", h.Tenant.List)
				r.Get("/{tenantID}", h.Tenant.Get)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{departmentID}", h.Department.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePeopleManager)
					r.Post("/", h.Department.Create)
					r.Put("/{departmentID}", h.Department.Update)
					r.Delete("/{departmentID}", h.Department.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{employeeID}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePeopleManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Delete("/{employeeID}", h.Employee.Delete)
					r.Post("/{employeeID}/invite", h.Employee.Invite)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", h.Leave.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePeopleManager)
					r.Post("/", h.Leave.CreateType)
					r.Put("/{leaveTypeID}", h.Leave.UpdateType)
					r.Delete("/{leaveTypeID}", h.Leave.DeleteType)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/", h.Leave.ListRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{requestID}/approve", h.Leave.Approve)
					r.Put("/{requestID}/reject", h.Leave.Reject)
				})
			})

			r.Get("/me/leave-balance", h.Leave.Balances)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Timesheet.ListClients)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePeopleManager)
					r.Post("/", h.Timesheet.CreateClient)
					r.Delete("/{clientID}", h.Timesheet.DeleteClient)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Timesheet.ListProjects)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePeopleManager)
					r.Post("/", h.Timesheet.CreateProject)
					r.Delete("/{projectID}", h.Timesheet.DeleteProject)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Route("/entries", func(r chi.Router) {
					r.Post("/", h.Timesheet.AddEntry)
					r.Get("/", h.Timesheet.ListEntries)
					r.Delete("/{entryID}", h.Timesheet.DeleteEntry)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Put("/{entryID}/approve", h.Timesheet.ApproveEntry)
						r.Put("/{entryID}/reject", h.Timesheet.RejectEntry)
					})
				})
				r.Post("/submit", h.Timesheet.SubmitWeek)
				r.Get("/summary", h.Timesheet.WeeklySummary)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/", h.Attendance.List)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequirePeopleManager)
				r.Get("/stats", h.Dashboard.Stats)
			})
		})
	})

	return r
}
