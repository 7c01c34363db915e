package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/okvist/patronpay/internal/pkg/config"
	"github.com/okvist/patronpay/internal/pkg/database"
	"github.com/okvist/patronpay/internal/pkg/health"
	"github.com/okvist/patronpay/internal/pkg/logger"
	"github.com/okvist/patronpay/internal/pkg/middleware"
	nrpkg "github.com/okvist/patronpay/internal/pkg/newrelic"
	"github.com/okvist/patronpay/internal/pkg/server"
	"github.com/okvist/patronpay/services/payment"
	"github.com/okvist/patronpay/services/payment/gateway/ils"
	"github.com/okvist/patronpay/services/payment/gateway/netpay"
	httpHandler "github.com/okvist/patronpay/services/payment/handler/http"
	"github.com/okvist/patronpay/services/payment/repository"
	"github.com/okvist/patronpay/services/payment/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "payment-service"
	configs := config.InitConfig("config/payment.env")

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())
	fingerprintTTL := time.Duration(configs.Payment.FingerprintTTL) * time.Second
	fingerprintStore := repository.NewFingerprintStore(redisClient, fingerprintTTL)

	// Initialize gateways
	ilsClient, err := ils.NewClient(configs.ILS)
	if err != nil {
		zapLogger.Fatal("Failed to create library system client", zap.Error(err))
	}

	netpayAdapter, err := netpay.NewAdapter(configs.NetPay, 30*time.Second)
	if err != nil {
		zapLogger.Fatal("Failed to create NetPay adapter", zap.Error(err))
	}

	// Initialize UseCase
	paymentUC := usecase.NewPaymentOrchestrator(
		configs,
		transactionRepo,
		fingerprintStore,
		ilsClient,
		[]payment.GatewayAdapter{netpayAdapter},
		zapLogger,
	)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterEndpoints(e, appName,
		health.PostgresChecker(postgresClient),
		health.RedisChecker(redisClient),
	)

	// Register service routes
	paymentHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
