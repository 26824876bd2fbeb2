package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds everything the server needs at startup
type Config struct {
	ServerPort         string
	Env                string
	LogLevel           string
	StaticDir          string
	JWTSecret          string
	JWTExpirationHours int64
	StoreDriver        string
	Mongo              MongoConfig
	Postgres           DBConfig
}

// MongoConfig holds document store connection parameters
type MongoConfig struct {
	URI      string
	Database string
}

// Load reads the configuration from the environment, after loading .env if present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found or error loading, relying on environment variables")
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Env:         getEnv("APP_ENV", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
			Database: getEnv("MONGO_DATABASE", "ewaste"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	jwtExpHours, err := strconv.ParseInt(getEnv("JWT_EXPIRATION_HOURS", "24"), 10, 64)
	if err != nil || jwtExpHours <= 0 {
		log.Warn().Str("value", os.Getenv("JWT_EXPIRATION_HOURS")).Msg("Invalid JWT_EXPIRATION_HOURS, defaulting to 24")
		jwtExpHours = 24
	}
	cfg.JWTExpirationHours = jwtExpHours

	switch cfg.StoreDriver {
	case DriverMongo:
	case DriverPostgres:
		dbCfg, err := LoadDBConfig()
		if err != nil {
			return nil, err
		}
		cfg.Postgres = *dbCfg
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, DriverMongo, DriverPostgres)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
