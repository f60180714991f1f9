package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything a service instance needs at startup. The signing
// secret and store connection are mandatory: a process without them must not
// come up, and there is no baked-in fallback connection string.
type Config struct {
	GinMode   string `mapstructure:"GIN_MODE"`
	Port      string `mapstructure:"API_PORT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	JWTSecret      string `mapstructure:"JWT_SECRET"`
	SessionTTL     time.Duration
	SessionTTLDays int `mapstructure:"SESSION_TTL_DAYS"`

	// Peer service base URLs. Identity needs the directory for professional
	// registration; the directory needs identity for enrichment.
	IdentityURL  string `mapstructure:"IDENTITY_SERVICE_URL"`
	DirectoryURL string `mapstructure:"DIRECTORY_SERVICE_URL"`

	ClientTimeout     time.Duration
	ClientTimeoutSecs int `mapstructure:"CLIENT_TIMEOUT_SECONDS"`
	EnrichConcurrency int `mapstructure:"ENRICH_CONCURRENCY"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`

	CORSOrigin string `mapstructure:"CORS_ORIGIN"`
}

// Load reads configuration from a .env file (if present) and the environment,
// then validates the mandatory values once.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL_DAYS", 30)

	v.SetDefault("IDENTITY_SERVICE_URL", "")
	v.SetDefault("DIRECTORY_SERVICE_URL", "")
	v.SetDefault("CLIENT_TIMEOUT_SECONDS", 5)
	v.SetDefault("ENRICH_CONCURRENCY", 8)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "no-reply@proconnect.local")

	v.SetDefault("CORS_ORIGIN", "*")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	cfg.SessionTTL = time.Duration(cfg.SessionTTLDays) * 24 * time.Hour
	cfg.ClientTimeout = time.Duration(cfg.ClientTimeoutSecs) * time.Second

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set")
	}
	if cfg.MongoDatabase == "" {
		return nil, fmt.Errorf("MONGO_DATABASE is not set")
	}
	if cfg.EnrichConcurrency < 1 {
		cfg.EnrichConcurrency = 1
	}

	return &cfg, nil
}
