package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/loan_service/internal/apperrors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaultMongoDatabase is the database used when neither MONGODB_DATABASE nor the URI names one.
const defaultMongoDatabase = "test"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	RateLimit    string // ulule limiter format, e.g. "100-M"; empty disables limiting

	MongoURI                string
	MongoDatabase           string
	MongoCollection         string
	MongoConnectTimeout     time.Duration
	MongoRetryInterval      time.Duration
	MongoMaxConnectAttempts int
}

// LoadConfig loads configuration from environment variables and .env file if present.
// A missing PORT or MONGODB_URI is reported as apperrors.ErrConfiguration.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "")
	v.SetDefault("MONGODB_COLLECTION", "loans")
	v.SetDefault("MONGODB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("MONGODB_RETRY_INTERVAL", "5s")
	v.SetDefault("MONGODB_MAX_CONNECT_ATTEMPTS", 0)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		MongoURI:        v.GetString("MONGODB_URI"),
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		MongoCollection: v.GetString("MONGODB_COLLECTION"),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("%w: PORT is not set", apperrors.ErrConfiguration)
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("%w: MONGODB_URI is not set", apperrors.ErrConfiguration)
	}

	uriDatabase, err := databaseFromURI(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("%w: MONGODB_URI is invalid: %v", apperrors.ErrConfiguration, err)
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = uriDatabase
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = defaultMongoDatabase
	}
	if cfg.MongoCollection == "" {
		cfg.MongoCollection = "loans"
	}

	cfg.MongoConnectTimeout = durationOrDefault(v.GetString("MONGODB_CONNECT_TIMEOUT"), "MONGODB_CONNECT_TIMEOUT", 10*time.Second)
	cfg.MongoRetryInterval = durationOrDefault(v.GetString("MONGODB_RETRY_INTERVAL"), "MONGODB_RETRY_INTERVAL", 5*time.Second)

	cfg.MongoMaxConnectAttempts = v.GetInt("MONGODB_MAX_CONNECT_ATTEMPTS")
	if cfg.MongoMaxConnectAttempts < 0 {
		log.Printf("Warning: Invalid value for MONGODB_MAX_CONNECT_ATTEMPTS (%d). Retrying forever.\n", cfg.MongoMaxConnectAttempts)
		cfg.MongoMaxConnectAttempts = 0
	}

	return cfg, nil
}

func durationOrDefault(raw, name string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", name, raw, fallback.String())
		}
		return fallback
	}
	return d
}

// databaseFromURI returns the default database named in a mongodb:// or
// mongodb+srv:// connection string. It does not resolve SRV records, so a
// temporarily unreachable DNS server does not fail startup.
func databaseFromURI(uri string) (string, error) {
	var rest string
	switch {
	case strings.HasPrefix(uri, "mongodb://"):
		rest = strings.TrimPrefix(uri, "mongodb://")
	case strings.HasPrefix(uri, "mongodb+srv://"):
		rest = strings.TrimPrefix(uri, "mongodb+srv://")
	default:
		return "", fmt.Errorf("scheme must be \"mongodb\" or \"mongodb+srv\"")
	}

	slash := strings.Index(rest, "/")
	if slash < 0 {
		return "", nil
	}
	path, _, _ := strings.Cut(rest[slash+1:], "?")
	return url.PathUnescape(path)
}
