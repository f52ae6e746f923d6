package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/learnhub/learning-platform/docs"
	"github.com/learnhub/learning-platform/internal/api/handler"
	"github.com/learnhub/learning-platform/internal/api/middleware"
	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

// Dependencies carries everything the router needs to mount its handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Verifier ports.TokenVerifier
	Health   map[string]handler.DependencyCheck
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// HTTP metrics live on a per-router registry so several routers can coexist
	// in one process; /metrics also exposes the default registry.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "learning_http",
		Registerer: reg,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	dashboardHandler := handler.NewDashboardHandler()
	healthHandler := handler.NewHealthHandler(deps.Health)

	authenticated := middleware.Protect(deps.Verifier)
	adminOnly := middleware.Protect(deps.Verifier, domain.RoleAdmin)
	studentOnly := middleware.Protect(deps.Verifier, domain.RoleStudent)
	teacherOnly := middleware.Protect(deps.Verifier, domain.RoleTeacher)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticated)

	// --- Role-scoped routes ---
	// Gates are attached per route so unknown paths fall through to 404.
	admin := e.Group("/api/admin")
	admin.GET("/dashboard", dashboardHandler.AdminDashboard, adminOnly)

	student := e.Group("/api/student")
	student.GET("/dashboard", dashboardHandler.StudentDashboard, studentOnly)
	student.GET("/courses", dashboardHandler.StudentCourses, studentOnly)
	student.GET("/profile", dashboardHandler.StudentProfile, studentOnly)

	teacher := e.Group("/api/teacher")
	teacher.GET("/dashboard", dashboardHandler.TeacherDashboard, teacherOnly)
	teacher.POST("/create-course", dashboardHandler.CreateCourse, teacherOnly)
	teacher.GET("/manage-courses", dashboardHandler.ManageCourses, teacherOnly)

	// --- Operational routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
