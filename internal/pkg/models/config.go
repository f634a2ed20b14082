package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	ILS      ILSConfig
	Gateway  GatewayConfig
	Payment  PaymentConfig
	Crypto   CryptoConfig
	Logger   LoggerConfig
	Sweeper  SweeperConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ILSConfig contains the ILS API connection configuration
type ILSConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// GatewayConfig contains the payment-gateway callback configuration
type GatewayConfig struct {
	Secret         string // shared HMAC secret for callback verification
	TransactionFee int64  // minor units, added on top of the payable total
}

// PaymentConfig contains reconciliation-engine tuning
type PaymentConfig struct {
	RegistrationTTLSeconds int    // advisory-lock TTL
	MinPaidAgeSeconds      int    // how long PAID may stall before the sweep retries it
	ExpireAfterHours       int    // give-up age for repeated registration failures
	ReportIntervalHours    int    // re-notification interval for unresolved transactions
	Currency               string // default currency code
}

// CryptoConfig contains card-password encryption configuration
type CryptoConfig struct {
	Secret string // key material for AES-GCM, stretched with PBKDF2
	Salt   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// SweeperConfig contains background-sweep configuration
type SweeperConfig struct {
	BatchSize  int
	MaxRetries int
}
