package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/config"
	"reimbursement_tracker/internal/handler"
	"reimbursement_tracker/internal/logger"
	"reimbursement_tracker/internal/middleware"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/repository"
	"reimbursement_tracker/internal/service"
	"reimbursement_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	ctx := context.Background()

	// --- Configuration ---
	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if envErr != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool, log); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWT.SecretKey, cfg.JWT.ExpirationHours)

	// --- Initialize Repositories ---
	employeeRepo := repository.NewEmployeeRepository(dbPool)
	reimbRepo := repository.NewReimbursementRepository(dbPool)

	// --- Initialize Services ---
	employeeService := service.NewEmployeeService(employeeRepo, log)
	reimbService := service.NewReimbursementService(reimbRepo, log)
	authService := service.NewAuthService(employeeService, jwtUtil)

	seedAdmin(ctx, employeeService, cfg.Seed)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	reimbHandler := handler.NewReimbursementHandler(reimbService, log)

	// --- Setup Gin Router ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery(), middleware.Metrics())

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	api := &router.RouterGroup
	authHandler.RegisterAuthRoutes(api)
	employeeHandler.RegisterEmployeeRoutes(api, jwtAuthMW, middleware.AdminGuard())
	reimbHandler.RegisterReimbursementRoutes(api, jwtAuthMW,
		middleware.FinanceManagerGuard(), middleware.UserGuard(), middleware.GeneralGuard())

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

// seedAdmin provisions the configured administrator unless it already exists.
func seedAdmin(ctx context.Context, employees service.EmployeeService, seed config.SeedConfig) {
	if seed.AdminUsername == "" || seed.AdminPassword == "" {
		return
	}
	log := logger.Get()

	_, err := employees.AddNewEmployee(ctx, model.Employee{
		Username:  seed.AdminUsername,
		Password:  seed.AdminPassword,
		FirstName: "System",
		LastName:  "Administrator",
		Email:     seed.AdminEmail,
		Role:      model.RoleAdmin,
	})
	switch {
	case err == nil:
		log.Info().Str("username", seed.AdminUsername).Msg("seeded administrator")
	case errors.Is(err, apperr.ErrResourcePersistence):
		log.Debug().Str("username", seed.AdminUsername).Msg("administrator already present")
	default:
		log.Fatal().Err(err).Msg("failed to seed administrator")
	}
}
