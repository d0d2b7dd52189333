package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/handler"
	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/service"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize state store (Redis or in-memory)
	var stateStore repository.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		stateStore = repository.NewRedisStateStore(redisClient)
		logger.Info("using Redis state store")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		logger.Info("using in-memory state store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	inviteeRepo := repository.NewPGInviteeRepository(db)
	rsvpRepo := repository.NewPGRSVPRepository(db)
	guestRepo := repository.NewPGAdditionalGuestRepository(db)

	// 7. Initialize session token manager
	jwtManager := jwtpkg.NewManager(cfg.Session.SigningKey, cfg.Session.Issuer, cfg.Session.TTL)

	// 8. Initialize services
	tokenService := service.NewTokenService(inviteeRepo, rsvpRepo, logger)
	rsvpService := service.NewRSVPService(inviteeRepo, rsvpRepo, guestRepo, logger)
	inviteeService := service.NewInviteeService(inviteeRepo)
	guestListService := service.NewGuestListService(inviteeRepo, rsvpRepo, guestRepo, logger)
	sessionService := service.NewSessionService(cfg.Dashboard.PasswordHash, stateStore, jwtManager)
	diagnosticService := service.NewDiagnosticService(cfg, inviteeRepo, rsvpRepo, guestRepo)

	if cfg.Dashboard.PasswordHash == "" {
		logger.Warn("dashboard password hash not set, host login is disabled")
	}

	// 9. Initialize handlers
	authHandler := handler.NewAuthHandler(sessionService)
	rsvpHandler := handler.NewRSVPHandler(tokenService, rsvpService)
	inviteeHandler := handler.NewInviteeHandler(inviteeService)
	guestListHandler := handler.NewGuestListHandler(guestListService)
	weddingHandler := handler.NewWeddingHandler(cfg.Wedding)
	debugHandler := handler.NewDebugHandler(diagnosticService, cfg.Debug.Secret, cfg.Server.Mode == "release")

	// 10. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, sessionService,
		authHandler, rsvpHandler, inviteeHandler, guestListHandler, weddingHandler, debugHandler)

	// 11. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 12. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
