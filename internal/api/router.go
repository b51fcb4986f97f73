package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jobhive/backend/docs"
	"github.com/jobhive/backend/internal/api/handler"
	"github.com/jobhive/backend/internal/api/middleware"
	"github.com/jobhive/backend/internal/auth"
	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
	"github.com/jobhive/backend/internal/core/service"
	jobhivemongo "github.com/jobhive/backend/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs to assemble the application.
type Deps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Codec      *auth.Codec
	Hasher     *auth.Hasher
	Throttle   ports.LoginThrottle
	Dispatcher ports.NotificationDispatcher
	Store      ports.FileStore
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Repositories ---
	userRepo := jobhivemongo.NewUserRepository(deps.DB)
	jobRepo := jobhivemongo.NewJobRepository(deps.DB)
	appRepo := jobhivemongo.NewApplicationRepository(deps.DB)
	profileRepo := jobhivemongo.NewProfileRepository(deps.DB)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.Hasher, deps.Codec, deps.Throttle, deps.Log)
	jobService := service.NewJobService(jobRepo, userRepo, deps.Log)
	appService := service.NewApplicationService(appRepo, jobRepo, userRepo, deps.Store, deps.Dispatcher, deps.Log)
	profileService := service.NewProfileService(profileRepo, userRepo, deps.Store, deps.Log)
	adminService := service.NewAdminService(userRepo, jobRepo, appRepo, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	profileHandler := handler.NewProfileHandler(profileService)
	adminHandler := handler.NewAdminHandler(adminService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobhive"))
	// Identity resolution runs on every request; access decisions stay
	// with the per-route gates below.
	e.Use(middleware.ResolveIdentity(deps.Codec, userRepo))

	requireAuth := middleware.RequireAuthenticated()
	applicantOnly := middleware.RequireRoles(domain.RoleApplicant)
	recruiterOnly := middleware.RequireRoles(domain.RoleRecruiter)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes (public) ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Jobs: reads public, writes gated ---
	jobs := e.Group("/api/jobs")
	jobs.GET("", jobHandler.List)
	jobs.GET("/saved", jobHandler.Saved, applicantOnly)
	jobs.GET("/my-jobs", jobHandler.MyJobs, recruiterOnly)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, recruiterOnly)
	jobs.POST("/:id/save", jobHandler.ToggleSave, applicantOnly)

	// --- Applications ---
	apps := e.Group("/api/applications")
	apps.POST("/:jobID/apply", appHandler.Apply, applicantOnly)
	apps.GET("/my-applications", appHandler.MyApplications, applicantOnly)
	apps.GET("/jobs/:jobID", appHandler.ForJob, recruiterOnly)
	apps.PUT("/:id/status", appHandler.UpdateStatus, recruiterOnly)
	apps.GET("/:id/resume", appHandler.DownloadResume, middleware.RequireRoles(domain.RoleApplicant, domain.RoleRecruiter))

	// --- Profile (any authenticated user) ---
	users := e.Group("/api/users", requireAuth)
	users.GET("/profile", profileHandler.Get)
	users.POST("/profile", profileHandler.Update)
	users.GET("/profile/resume", profileHandler.DownloadResume)

	// --- Admin ---
	admin := e.Group("/api/admin", adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/jobs", adminHandler.Jobs)
	admin.DELETE("/jobs/:id", adminHandler.DeleteJob)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
