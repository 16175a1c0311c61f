package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/padhoai/backend/docs"
	"github.com/padhoai/backend/internal/auth"
	"github.com/padhoai/backend/internal/config"
	"github.com/padhoai/backend/internal/handlers"
	"github.com/padhoai/backend/internal/janitor"
	"github.com/padhoai/backend/internal/logger"
	"github.com/padhoai/backend/internal/middleware"
	"github.com/padhoai/backend/internal/models"
	"github.com/padhoai/backend/internal/repositories"
	"github.com/padhoai/backend/internal/services"
	"github.com/padhoai/backend/internal/speech"
	"github.com/padhoai/backend/internal/storage"
	"github.com/padhoai/backend/internal/view"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 1 << 20 // 1MB

// @title Padho.ai API
// @version 1.0
// @description API for the Padho.ai learning app: mocked sign-in, dashboard and AI tutor chat

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the device token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Padho.ai backend", zap.String("storage", cfg.Storage.Backend))

	// Open the key-value store
	store, err := openStore(cfg, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	// Initialize device tokens
	deviceTokens := auth.NewDeviceTokens(cfg.Device.Secret, cfg.Device.TokenExpiry)

	// Initialize repositories and in-memory state
	profileRepo := repositories.NewProfileRepository(store, logger.Logger)
	viewRegistry := view.NewRegistry()

	// Initialize services
	authService := services.NewAuthService(profileRepo, viewRegistry, cfg.Delays.Auth, logger.Logger)
	viewService := services.NewViewService(profileRepo, viewRegistry, logger.Logger)
	dashboardService := services.NewDashboardService(profileRepo, logger.Logger)
	speechService := speech.NewService(cfg.Speech.Enabled, cfg.Speech.BaseURL)
	tutorService := services.NewTutorService(profileRepo, viewRegistry, speechService, cfg.Delays.Tutor, logger.Logger)

	// Leaving the chat discards its history
	viewRegistry.OnLeave(models.ViewChat, tutorService.Discard)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	viewHandler := handlers.NewViewHandler(viewService, logger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger.Logger)
	tutorHandler := handlers.NewTutorHandler(tutorService, logger.Logger)

	// Schedule the idle state janitor
	idleJanitor, err := janitor.New(cfg.Janitor.Schedule, cfg.Janitor.IdleTimeout, logger.Logger,
		janitor.Target{Name: "views", Evictor: viewRegistry},
		janitor.Target{Name: "chats", Evictor: tutorService},
	)
	if err != nil {
		logger.Logger.Fatal("Failed to create janitor", zap.Error(err))
	}
	idleJanitor.Start()

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1; every API request belongs to a device
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.DeviceMiddleware(deviceTokens, logger.Logger))
		authHandler.RegisterRoutes(r)
		viewHandler.RegisterRoutes(r)
		dashboardHandler.RegisterRoutes(r)
		tutorHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	idleJanitor.Stop(ctx)

	logger.Logger.Info("Server exited")
}

// openStore creates the key-value store selected by STORAGE_BACKEND
func openStore(cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return storage.NewRedisStore(client, logger), nil
	case config.BackendMySQL:
		return openSQLStore(storage.DialectMySQL, cfg.DSN(), logger)
	case config.BackendSQLite:
		return openSQLStore(storage.DialectSQLite, cfg.Storage.SQLitePath, logger)
	default:
		return storage.NewMemoryStore(), nil
	}
}

// openSQLStore connects to the database, runs migrations and wraps it in a store
func openSQLStore(dialect, dsn string, logger *zap.Logger) (storage.Store, error) {
	db, err := connectDB(dialect, dsn)
	if err != nil {
		return nil, err
	}

	if err := storage.Migrate(db, dialect); err != nil {
		db.Close()
		return nil, err
	}

	store, err := storage.NewSQLStore(db, dialect, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// connectDB connects to the database
func connectDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == storage.DialectSQLite {
		// SQLite serializes writers; one connection avoids "database is locked"
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
