package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"whalestreet_ai_server/api"
	"whalestreet_ai_server/config"
	"whalestreet_ai_server/internal/ai"
	handlers "whalestreet_ai_server/internal/api"
	"whalestreet_ai_server/internal/logger"
	"whalestreet_ai_server/internal/middleware"
	"whalestreet_ai_server/internal/session"
	"whalestreet_ai_server/internal/studio"
)

func main() {
	// --- Load .env file ---
	// Must run before config loading so the values reach viper's AutomaticEnv.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Dependency Initialization ---
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("Cannot initialize AI provider", zap.String("provider", cfg.AIProvider), zap.Error(err))
	}
	aiGenerator := ai.NewGenerator(provider, zapLogger,
		ai.WithTemperature(cfg.AITemperature),
		ai.WithTimeout(cfg.AITimeout),
	)

	store, closeStore, err := newSessionStore(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Cannot initialize session store", zap.String("store", cfg.SessionStore), zap.Error(err))
	}
	defer closeStore()

	studioService := studio.NewService(store, aiGenerator, zapLogger)
	apiHandler := handlers.NewAPIHandler(studioService, zapLogger)

	// --- HTTP Server Setup (Gin) ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(middleware.GinZapLogger(zapLogger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler)

	// Applied after route registration so every route gets instrumented.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 30*time.Second, // a turn may wait on the model
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("API server listen error", zap.Error(err))
		}
		zapLogger.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("API server forced shutdown", zap.Error(err))
	} else {
		zapLogger.Info("API server gracefully stopped")
	}

	zapLogger.Info("Application exiting")
}

func newProvider(ctx context.Context, cfg config.Config) (ai.Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		return ai.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.GeminiModel)
	default:
		return ai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	}
}

func newSessionStore(ctx context.Context, cfg config.Config, log *zap.Logger) (session.Store, func(), error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		log.Info("Using in-memory session store", zap.Duration("ttl", cfg.SessionTTL))
		return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	log.Info("Connected to Redis session store", zap.String("addr", cfg.RedisAddr))

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close Redis client", zap.Error(err))
		}
	}
	return session.NewRedisStore(client, cfg.SessionTTL, cfg.SessionLockTTL, log), closeFn, nil
}
