package main

import (
	"github.com/gin-gonic/gin"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/application/service"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/config"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/infrastructure/database"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/infrastructure/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/handler"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/presentation/http/routes"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/logger"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Must(logger.New(cfg.App.Env))
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed voucher sequences and the default admin user
	if err := database.SeedDefaultData(db, &cfg.Voucher); err != nil {
		log.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	adminReceiptRepo := repository.NewAdminReceiptRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	receiptService := service.NewReceiptService(receiptRepo, clientRepo, voucherRepo, cfg.Voucher.Prefix)
	adminReceiptService := service.NewAdminReceiptService(adminReceiptRepo, voucherRepo, cfg.Voucher.AdminPrefix)
	ledgerService := service.NewLedgerService(ledgerRepo, clientRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	reportService := service.NewReportService(receiptRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Client:       handler.NewClientHandler(clientService, ledgerService),
		Receipt:      handler.NewReceiptHandler(receiptService),
		AdminReceipt: handler.NewAdminReceiptHandler(adminReceiptService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Report:       handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          logger.Named(log, "http"),
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
