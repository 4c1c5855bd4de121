package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// SessionPIN is the credential the exchange authorizer checks.
	SessionPIN string
	// QuoteTTL is how long a quote may wait before execution rejects it as stale.
	QuoteTTL time.Duration
	// PinRateLimit limits login and authorize attempts per client, e.g. "5-M".
	PinRateLimit string

	FrontendBaseURL string
	ShutdownTimeout time.Duration
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "fx-wallet"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("SESSION_PIN", "0000")
	viper.SetDefault("QUOTE_TTL", "5m")
	viper.SetDefault("PIN_RATE_LIMIT", "5-M")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.SessionPIN = viper.GetString("SESSION_PIN")
	if len(cfg.SessionPIN) != 4 {
		return nil, fmt.Errorf("SESSION_PIN must be 4 digits, got %d characters", len(cfg.SessionPIN))
	}
	for _, r := range cfg.SessionPIN {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("SESSION_PIN must be 4 digits")
		}
	}

	cfg.QuoteTTL = durationOrDefault("QUOTE_TTL", 5*time.Minute)
	cfg.PinRateLimit = viper.GetString("PIN_RATE_LIMIT")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.ShutdownTimeout = durationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	return cfg, nil
}

// durationOrDefault reads key as a duration such as "60m" or "1h", falling
// back to def when it is unset or unparsable.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
