package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanctuaryofnature/api/internal/config"
	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/handler"
	"github.com/sanctuaryofnature/api/internal/middleware"
	"github.com/sanctuaryofnature/api/internal/repository"
	"github.com/sanctuaryofnature/api/internal/service"
)

func main() {
	// A .env file is optional; deployments pass the environment directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging: JSON in production, text elsewhere
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	var logHandler slog.Handler
	if cfg.IsProduction() {
		logHandler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		logHandler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(logHandler))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the document store. A missing or unreachable store is not
	// fatal: the API keeps serving and reports the condition on /test.
	store := database.NewSurrealStore(database.Config{
		URL:       cfg.Database.URL,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
	})
	defer func() { _ = store.Close() }()

	if cfg.Database.URLSet {
		connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
		if err := store.Connect(connectCtx); err != nil {
			slog.Warn("document store unreachable, serving degraded",
				slog.String("url", cfg.Database.URL),
				slog.String("error", err.Error()),
			)
		} else {
			slog.Info("connected to document store",
				slog.String("namespace", cfg.Database.Namespace),
				slog.String("database", cfg.Database.Database),
			)
		}
		cancel()
	} else {
		slog.Warn("DATABASE_URL not set, serving degraded")
	}

	// Initialize repositories
	hostRepo := repository.NewHostRepository(store)
	locationRepo := repository.NewLocationRepository(store)
	retreatRepo := repository.NewRetreatRepository(store)
	messageRepo := repository.NewMessageRepository(store)

	// Initialize services
	hostService := service.NewHostService(service.HostServiceConfig{
		HostRepo: hostRepo,
	})
	locationService := service.NewLocationService(service.LocationServiceConfig{
		LocationRepo: locationRepo,
	})
	retreatService := service.NewRetreatService(service.RetreatServiceConfig{
		RetreatRepo: retreatRepo,
	})
	messageService := service.NewMessageService(service.MessageServiceConfig{
		MessageRepo: messageRepo,
	})
	recommendService := service.NewRecommendationService(service.RecommendationServiceConfig{
		RetreatRepo: retreatRepo,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(handler.HealthHandlerConfig{
		Store:   store,
		URLSet:  cfg.Database.URLSet,
		NameSet: cfg.Database.NameSet,
	})
	hostHandler := handler.NewHostHandler(hostService)
	locationHandler := handler.NewLocationHandler(locationService)
	retreatHandler := handler.NewRetreatHandler(retreatService)
	messageHandler := handler.NewMessageHandler(messageService)
	recommendHandler := handler.NewRecommendHandler(recommendService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health and diagnostics
	mux.HandleFunc("GET /{$}", healthHandler.Liveness)
	mux.HandleFunc("GET /test", healthHandler.Diagnostics)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Catalog endpoints
	mux.HandleFunc("POST /api/hosts", hostHandler.CreateHost)
	mux.HandleFunc("GET /api/hosts", hostHandler.ListHosts)
	mux.HandleFunc("POST /api/locations", locationHandler.CreateLocation)
	mux.HandleFunc("GET /api/locations", locationHandler.ListLocations)
	mux.HandleFunc("POST /api/retreats", retreatHandler.CreateRetreat)
	mux.HandleFunc("GET /api/retreats", retreatHandler.ListRetreats)
	mux.HandleFunc("POST /api/messages", messageHandler.CreateMessage)
	mux.HandleFunc("GET /api/messages", messageHandler.ListMessages)

	// Recommendation endpoints
	mux.HandleFunc("POST /api/recommend", recommendHandler.Recommend)
	mux.HandleFunc("POST /api/quiz", recommendHandler.Quiz)

	// Apply global middleware. Metrics sits inside RequestID so it sees the
	// request instance the mux annotates with the matched pattern.
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Metrics,
		middleware.Recovery,
		middleware.CORS([]string{"*"}),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
