package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	DocStore DocStoreConfig
	Mongo    MongoConfig
	Database DatabaseConfig
	Auth     AuthConfig
	OTP      OTPConfig
	Logger   LoggerConfig
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
	Host             string
	Port             int
	ShutdownTimeout  int // in seconds
	BodyLimit        string
	CORSAllowOrigins []string
}

// DocStoreConfig selects the document store backing ride requests
type DocStoreConfig struct {
	Driver         string // "mongo" or "postgres"
	ConnectRetries int    // startup connection retries after the first attempt
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int // in seconds
}

// DatabaseConfig contains PostgreSQL connection configuration
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

// AuthConfig contains session token configuration
type AuthConfig struct {
	SessionToken string
}

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	TTLMillis int64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level  string
	Format string // "json" or "text"
}
