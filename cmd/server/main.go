package main

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/config"
	"github.com/ninetd/ninetd/internal/database"
	"github.com/ninetd/ninetd/internal/handlers"
	"github.com/ninetd/ninetd/internal/middleware"
	"github.com/ninetd/ninetd/internal/repository"
	"github.com/ninetd/ninetd/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := setupLogger(cfg)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskService := services.NewTaskService(taskRepo)
	auditService := services.NewAuditService(auditRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	logHandler := handlers.NewLogHandler(auditService)
	messageHandler := handlers.NewMessageHandler(messageService)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(authService))
		{
			protected.GET("/tasks", taskHandler.ListTasks)
			protected.POST("/tasks", taskHandler.CreateTask)
			protected.PUT("/tasks/:id", taskHandler.UpdateTask)
			protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

			protected.GET("/logs", logHandler.ListLogs)
			protected.POST("/logs", logHandler.WriteLog)

			protected.GET("/messages", messageHandler.ListMessages)
			protected.POST("/messages", messageHandler.SendMessage)
		}
	}

	addr := ":" + strconv.Itoa(cfg.HTTPPort)
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
