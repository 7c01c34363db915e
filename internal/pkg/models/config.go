package models

// Config holds all application configuration, populated once at startup and
// passed explicitly into constructors.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	ILS      ILSConfig
	Payment  PaymentConfig
	NetPay   NetPayConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-level settings
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL settings
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig contains Redis settings for the fingerprint session store
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig contains NATS settings for the operator reporting sink
type NATSConfig struct {
	URL           string `json:"url"`
	ReportSubject string `json:"report_subject"`
}

// ILSConfig contains settings for the library-management system client
type ILSConfig struct {
	BaseURL        string `json:"base_url"`
	APIKey         string `json:"api_key"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// PaymentConfig contains payment policy settings. Durations are in seconds.
type PaymentConfig struct {
	Currency           string `json:"currency"`
	TransactionFee     int64  `json:"transaction_fee"`
	StaleAfterSeconds  int    `json:"stale_after_seconds"`
	MinPaidAgeSeconds  int    `json:"min_paid_age_seconds"`
	RegistrationExpiry int    `json:"registration_expiry_seconds"`
	ReportInterval     int    `json:"report_interval_seconds"`
	ReconcileInterval  int    `json:"reconcile_interval_seconds"`
	ReturnBaseURL      string `json:"return_base_url"`
	FingerprintTTL     int    `json:"fingerprint_ttl_seconds"`
}

// NetPayConfig contains credentials for the NetPay payment provider
type NetPayConfig struct {
	MerchantID string `json:"merchant_id"`
	Secret     string `json:"secret"`
	Endpoint   string `json:"endpoint"`
	Locale     string `json:"locale"`
}

// NewRelicConfig contains New Relic monitoring settings
type NewRelicConfig struct {
	LicenseKey  string `json:"license_key"`
	AppName     string `json:"app_name"`
	Enabled     bool   `json:"enabled"`
	ForwardLogs bool   `json:"forward_logs"`
}

// LoggerConfig contains logging settings
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
