package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/config"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/dao"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/models"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/notification"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/router"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Set Gin to release mode by default (can be overridden by GIN_MODE env var)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting SFA Approval Engine...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Set log level from config
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.WithFields(logrus.Fields{
		"config_path": configPath,
		"log_level":   logger.GetLevel().String(),
	}).Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	// Verify database connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		logger.WithError(err).Fatal("Database health check failed")
	}

	logger.Info("Database connection established successfully")

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	workflowDAO := dao.NewWorkflowDAO(db)
	requestDAO := dao.NewRequestDAO(db)
	approvalDAO := dao.NewApprovalDAO(db)
	orderDAO := dao.NewOrderDAO(db)
	assetDAO := dao.NewAssetDAO(db)

	logger.Info("DAOs initialized successfully")

	// Initialize notification dispatcher
	var dispatcher notification.Dispatcher
	if cfg.Notification.Enabled {
		httpDispatcher := notification.NewHTTPDispatcher(&cfg.Notification, logger)
		defer httpDispatcher.Close()
		dispatcher = httpDispatcher
	} else {
		dispatcher = notification.NoopDispatcher{}
	}
	logger.WithField("enabled", cfg.Notification.Enabled).Info("Notification dispatcher initialized")

	// Register side-effect appliers
	registry := service.NewSideEffectRegistry()
	if err := registry.Register(models.RequestTypeOrderApproval, service.NewOrderSideEffect(orderDAO, logger)); err != nil {
		logger.WithError(err).Fatal("Failed to register order side effect")
	}
	if err := registry.Register(models.RequestTypeAssetMovementApproval, service.NewAssetMovementSideEffect(assetDAO, logger)); err != nil {
		logger.WithError(err).Fatal("Failed to register asset movement side effect")
	}

	// Initialize services
	resolver := service.NewWorkflowResolver(workflowDAO, logger)
	details := service.NewDetailFetcher(orderDAO, assetDAO, logger)

	approvalService := service.NewApprovalService(
		userDAO,
		requestDAO,
		approvalDAO,
		resolver,
		registry,
		details,
		dispatcher,
		db,
		cfg.Workflow.TransactionTimeout,
		logger,
	)

	workflowService := service.NewWorkflowService(workflowDAO, userDAO, logger)

	logger.Info("Services initialized successfully")

	// Setup router
	ginRouter := router.SetupRouter(approvalService, workflowService, db)

	// Configure HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:           serverAddr,
		Handler:        ginRouter,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"hostname": cfg.Server.Hostname,
			"port":     cfg.Server.Port,
			"addr":     serverAddr,
		}).Info("Starting HTTP server...")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithField("address", serverAddr).Info("Server is running")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close database")
	}

	logger.Info("Server exited gracefully")
}
