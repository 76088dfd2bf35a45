package config

import (
	"strings"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the .env file at configPath (local
// environment only) and the process environment, which always wins.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logrus.WithError(err).Warn("error loading config from file")
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "ridebook")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("SERVER_BODY_LIMIT", "1M")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	v.SetDefault("DOCSTORE_DRIVER", "mongo")
	v.SetDefault("DOCSTORE_CONNECT_RETRIES", 0)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "ridebook")
	v.SetDefault("MONGO_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "ridebook")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("AUTH_SESSION_TOKEN", DefaultSessionToken)
	v.SetDefault("OTP_TTL_MS", DefaultOTPTTLMillis)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

const (
	// DefaultSessionToken is the static token handed out after OTP verification
	DefaultSessionToken = "ridebook-static-session-token"
	// DefaultOTPTTLMillis is the OTP lifetime, five minutes
	DefaultOTPTTLMillis = 300000
)

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.BodyLimit = v.GetString("SERVER_BODY_LIMIT")
	configs.Server.CORSAllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	// Document store
	configs.DocStore.Driver = strings.ToLower(v.GetString("DOCSTORE_DRIVER"))
	configs.DocStore.ConnectRetries = v.GetInt("DOCSTORE_CONNECT_RETRIES")

	configs.Mongo.URI = v.GetString("MONGO_URI")
	configs.Mongo.Database = v.GetString("MONGO_DATABASE")
	configs.Mongo.Timeout = v.GetInt("MONGO_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Auth and OTP
	configs.Auth.SessionToken = v.GetString("AUTH_SESSION_TOKEN")
	configs.OTP.TTLMillis = v.GetInt64("OTP_TTL_MS")
	if configs.OTP.TTLMillis <= 0 {
		logrus.Warnf("Invalid OTP_TTL_MS, using default: %d", DefaultOTPTTLMillis)
		configs.OTP.TTLMillis = DefaultOTPTTLMillis
	}

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.Format = v.GetString("LOG_FORMAT")

	return configs
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
