package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/okvist/patronpay/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "patronpay")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")
	configs.NATS.ReportSubject = GetEnv("NATS_REPORT_SUBJECT", "payments.unresolved")

	// ILS config
	configs.ILS.BaseURL = GetEnv("ILS_BASE_URL", "")
	configs.ILS.APIKey = GetEnv("ILS_API_KEY", "")
	configs.ILS.TimeoutSeconds = GetEnvAsInt("ILS_TIMEOUT_SECONDS", 10)

	// Payment policy config
	configs.Payment.Currency = GetEnv("PAYMENT_CURRENCY", "EUR")
	configs.Payment.TransactionFee = GetEnvAsInt64("PAYMENT_TRANSACTION_FEE", 0)
	configs.Payment.StaleAfterSeconds = GetEnvAsInt("PAYMENT_STALE_AFTER_SECONDS", 900)
	configs.Payment.MinPaidAgeSeconds = GetEnvAsInt("PAYMENT_MIN_PAID_AGE_SECONDS", 120)
	configs.Payment.RegistrationExpiry = GetEnvAsInt("PAYMENT_REGISTRATION_EXPIRY_SECONDS", 259200)
	configs.Payment.ReportInterval = GetEnvAsInt("PAYMENT_REPORT_INTERVAL_SECONDS", 86400)
	configs.Payment.ReconcileInterval = GetEnvAsInt("PAYMENT_RECONCILE_INTERVAL_SECONDS", 300)
	configs.Payment.ReturnBaseURL = GetEnv("PAYMENT_RETURN_BASE_URL", "")
	configs.Payment.FingerprintTTL = GetEnvAsInt("PAYMENT_FINGERPRINT_TTL_SECONDS", 3600)

	// NetPay provider config
	configs.NetPay.MerchantID = GetEnv("NETPAY_MERCHANT_ID", "")
	configs.NetPay.Secret = GetEnv("NETPAY_SECRET", "")
	configs.NetPay.Endpoint = GetEnv("NETPAY_ENDPOINT", "")
	configs.NetPay.Locale = GetEnv("NETPAY_LOCALE", "en_US")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
