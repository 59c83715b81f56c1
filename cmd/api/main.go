package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	gatewayport "github.com/texthub/bulksms-portal/internal/domain/port/gateway"
	authUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/auth"
	balanceUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/balance"
	clientUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/client"
	contactUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/contact"
	dispatchUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/dispatch"
	historyUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/history"
	transactionUseCase "github.com/texthub/bulksms-portal/internal/domain/usecase/transaction"

	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/handler"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/routes"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/crypto"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/database"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/database/migration"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/gateway"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/logger"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/repository"
	timeProvider "github.com/texthub/bulksms-portal/internal/infrastructure/adapter/time"
	"github.com/texthub/bulksms-portal/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	migrationMgr := migration.NewManager(db, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if cfg.Admin.Password != "" {
		passwordHash, err := hasher.Hash(cfg.Admin.Password)
		if err != nil {
			appLogger.Error("Failed to hash admin password", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		if err := migrationMgr.SeedDefaultAdmin(cfg.Admin.Name, cfg.Admin.Email, passwordHash); err != nil {
			appLogger.Error("Failed to seed default admin", map[string]any{"error": err.Error()})
		}
	}

	// Repositories
	clientRepo := repository.NewClientRepository(db, appLogger)
	clientUserRepo := repository.NewClientUserRepository(db, appLogger)
	adminRepo := repository.NewAdminRepository(db, appLogger)
	balanceRepo := repository.NewBalanceRepository(db, tp, appLogger)
	contactRepo := repository.NewContactRepository(db, appLogger)
	historyRepo := repository.NewHistoryRepository(db, appLogger)
	uow := database.NewUnitOfWork(db, appLogger, tp)

	// SMS gateway
	var smsGateway gatewayport.SMSGateway
	if cfg.Gateway.Mode == "http" {
		smsGateway = gateway.NewRestyGateway(
			cfg.Gateway.URL,
			cfg.Gateway.APIKey,
			time.Duration(cfg.Dispatch.GatewayTimeoutMs)*time.Millisecond,
			appLogger,
		)
	} else {
		smsGateway = gateway.NewSimulatedGateway(
			cfg.Gateway.FailureRate,
			time.Duration(cfg.Gateway.DelayMs)*time.Millisecond,
			appLogger,
		)
	}

	// Use cases
	authService := authUseCase.NewService(adminRepo, clientRepo, clientUserRepo, hasher, tp, appLogger, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	balanceService := balanceUseCase.NewService(balanceRepo, appLogger)
	clientService := clientUseCase.NewService(uow, clientRepo, clientUserRepo, contactRepo, hasher, tp, appLogger)
	contactService := contactUseCase.NewService(contactRepo, tp, appLogger)
	historyService := historyUseCase.NewService(historyRepo, tp, appLogger)
	transactionService := transactionUseCase.NewService(uow, clientRepo, tp, appLogger)
	dispatchService := dispatchUseCase.NewService(contactRepo, balanceRepo, historyRepo, smsGateway, tp, appLogger).
		WithConcurrency(cfg.Dispatch.ConcurrencyLevel).
		WithGatewayTimeout(time.Duration(cfg.Dispatch.GatewayTimeoutMs) * time.Millisecond)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	adminHandler := handler.NewAdminHandler(clientService, transactionService, appLogger)
	contactHandler := handler.NewContactHandler(contactService, appLogger)
	smsHandler := handler.NewSMSHandler(dispatchService, balanceService, historyService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authService, authHandler, adminHandler, contactHandler, smsHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", map[string]any{
			"addr":        server.Addr,
			"environment": cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	appLogger.Info("Server exited", nil)
}
