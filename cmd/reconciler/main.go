package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okvist/patronpay/internal/pkg/config"
	"github.com/okvist/patronpay/internal/pkg/database"
	"github.com/okvist/patronpay/internal/pkg/logger"
	natspkg "github.com/okvist/patronpay/internal/pkg/nats"
	nrpkg "github.com/okvist/patronpay/internal/pkg/newrelic"
	"github.com/okvist/patronpay/services/payment/gateway/ils"
	"github.com/okvist/patronpay/services/payment/repository"
	"github.com/okvist/patronpay/services/reconciler/gateway/natsgw"
	"github.com/okvist/patronpay/services/reconciler/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "payment-reconciler"
	configs := config.InitConfig("config/reconciler.env")

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

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository and gateways
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())

	ilsClient, err := ils.NewClient(configs.ILS)
	if err != nil {
		zapLogger.Fatal("Failed to create library system client", zap.Error(err))
	}

	reporter := natsgw.NewReporter(natsClient, configs.NATS.ReportSubject)

	// Initialize the reconciler
	reconciler := usecase.NewReconciler(configs, transactionRepo, ilsClient, reporter, zapLogger)

	// Run until signalled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-quit
		zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	reconciler.Run(ctx)
	zapLogger.Info("Reconciler stopped")
}
