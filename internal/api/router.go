package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smarttask/task-system/internal/api/handler"
	"github.com/smarttask/task-system/internal/api/middleware"
	"github.com/smarttask/task-system/internal/core/ports"
	"github.com/smarttask/task-system/internal/core/token"
)

// Dependencies carries the wired services the router needs. Construction
// happens in cmd/api so the bootstrap (EnsureDefaultAdmin, dispatcher
// lifecycle) stays in one place.
type Dependencies struct {
	AuthService ports.AuthService
	TaskService ports.TaskService
	Codec       *token.Codec
	Principals  ports.PrincipalResolver
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Everything under /api passes the request gate and the access policy;
// health probes and /metrics stay outside.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("smarttask"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Gated API surface ---
	// The gate attaches a principal (or doesn't); the policy admits or
	// rejects. Public prefixes are served even with a broken bearer header.
	gate := middleware.Authenticate(deps.Codec, deps.Principals, deps.Log)
	policy := middleware.Authorize(middleware.DefaultRules())
	apiGroup := e.Group("/api", gate, policy)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	apiGroup.POST("/auth/signup", authHandler.Signup)
	apiGroup.POST("/auth/login", authHandler.Login)

	adminHandler := handler.NewAdminHandler(deps.TaskService)
	admin := apiGroup.Group("/admin")
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/task", adminHandler.CreateTask)
	admin.GET("/tasks", adminHandler.ListTasks)
	admin.GET("/tasks/search/:title", adminHandler.SearchTasks)
	admin.GET("/task/:id", adminHandler.GetTask)
	admin.PUT("/task/:id", adminHandler.UpdateTask)
	admin.DELETE("/task/:id", adminHandler.DeleteTask)
	admin.POST("/task/comment/:taskId", adminHandler.CreateComment)
	admin.GET("/comments/:taskId", adminHandler.ListComments)

	employeeHandler := handler.NewEmployeeHandler(deps.TaskService)
	employee := apiGroup.Group("/employee")
	employee.GET("/tasks", employeeHandler.ListMyTasks)
	employee.GET("/task/:id", employeeHandler.GetTask)
	employee.PUT("/task/:id/:status", employeeHandler.UpdateTaskStatus)
	employee.POST("/task/comment/:taskId", employeeHandler.CreateComment)
	employee.GET("/comments/:taskId", employeeHandler.ListComments)

	return e
}
