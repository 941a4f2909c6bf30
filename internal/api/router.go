package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/studytrack/task-api/docs"
	"github.com/studytrack/task-api/internal/api/handler"
	"github.com/studytrack/task-api/internal/api/middleware"
	"github.com/studytrack/task-api/internal/core/service"
	"github.com/studytrack/task-api/internal/infrastructure/config"
	mongodb "github.com/studytrack/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/studytrack/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; task-list caching is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)

	var cache service.TaskListCache
	if rdb != nil {
		cache = redisdb.NewTaskListCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, middleware.SessionTTL)
	taskService := service.NewTaskService(taskRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	taskHandler := handler.NewTaskHandler(taskService)
	session := middleware.Session(cfg.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/check-user", authHandler.CheckUser, session)

	// --- Task routes (session required) ---
	tasks := e.Group("/api/tasks", session)
	tasks.POST("/create-task", taskHandler.Create)
	tasks.GET("/get-tasks", taskHandler.List)
	tasks.PUT("/update-task/:id", taskHandler.Update)
	tasks.DELETE("/delete-task/:id", taskHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
