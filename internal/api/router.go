package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/shiftboard/jobboard-api/docs"
	"github.com/shiftboard/jobboard-api/internal/api/handler"
	"github.com/shiftboard/jobboard-api/internal/api/middleware"
	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Auth         ports.AuthService
	Accounts     ports.AccountService
	Jobs         ports.JobService
	Applications ports.ApplicationService
	SavedJobs    ports.SavedJobService
	Tokens       middleware.TokenVerifier
	Validator    *validation.Validator

	// Readiness checks keyed by dependency name, served on /health/ready.
	Readiness map[string]handler.DependencyCheck

	Logger      zerolog.Logger
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator(d.Validator)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "jobboard",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	accountHandler := handler.NewAccountHandler(d.Accounts)
	jobHandler := handler.NewJobHandler(d.Jobs)
	applicationHandler := handler.NewApplicationHandler(d.Applications)
	savedJobHandler := handler.NewSavedJobHandler(d.SavedJobs)

	authenticate := middleware.Authenticate(d.Tokens)
	company := []echo.MiddlewareFunc{authenticate, middleware.RequireRole(d.Accounts, domain.RoleCompany)}
	jobSeeker := []echo.MiddlewareFunc{authenticate, middleware.RequireRole(d.Accounts, domain.RoleJobSeeker)}
	anyAccount := []echo.MiddlewareFunc{authenticate, middleware.RequireRole(d.Accounts)}

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/signup/company", authHandler.SignupCompany)
	api.POST("/signup/jobseeker", authHandler.SignupJobSeeker)
	api.POST("/login/company", authHandler.LoginCompany)
	api.POST("/login/jobseeker", authHandler.LoginJobSeeker)

	// --- Accounts ---
	api.GET("/company/me", accountHandler.CompanyMe, company...)
	api.PUT("/company", accountHandler.UpdateCompany, company...)
	api.DELETE("/company", accountHandler.DeleteCompany, company...)
	api.GET("/company/:id", accountHandler.CompanyByID)

	api.GET("/jobseeker/me", accountHandler.JobSeekerMe, jobSeeker...)
	api.PUT("/jobseeker", accountHandler.UpdateJobSeeker, jobSeeker...)
	api.DELETE("/jobseeker", accountHandler.DeleteJobSeeker, jobSeeker...)

	// --- Jobs ---
	api.POST("/job/create", jobHandler.Create, company...)
	api.GET("/job/mine", jobHandler.Mine, company...)
	api.PUT("/job/:id", jobHandler.Update, company...)
	api.DELETE("/job/:id", jobHandler.Delete, company...)
	api.GET("/job/:id", jobHandler.Get)
	api.GET("/job", jobHandler.List)

	// --- Saved jobs ---
	api.POST("/savedjob/:jobId", savedJobHandler.Save, jobSeeker...)
	api.GET("/savedjob", savedJobHandler.List, jobSeeker...)
	api.DELETE("/savedjob/:jobId", savedJobHandler.Unsave, jobSeeker...)

	// --- Applications ---
	api.POST("/application", applicationHandler.Submit, jobSeeker...)
	api.GET("/application/my", applicationHandler.ListMine, jobSeeker...)
	api.DELETE("/application/:id", applicationHandler.Withdraw, jobSeeker...)
	api.GET("/application/:id", applicationHandler.Get, anyAccount...)
	api.GET("/application/job/:jobId", applicationHandler.ListForJob, company...)
	api.PUT("/application/:id", applicationHandler.SetStatus, company...)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
