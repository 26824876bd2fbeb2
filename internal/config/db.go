package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
	pingTimeout   = 10 * time.Second
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection pool to PostgreSQL
func ConnectDB(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to create pool: %w", err)
	}

	// Retry the ping a few times, the database may still be starting
	for i := 0; i < maxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			log.Info().Msg("Successfully connected to PostgreSQL")
			return pool, nil
		}
		log.Warn().Err(err).Msgf("Failed to connect to database (attempt %d/%d), retrying in %v", i+1, maxRetries, retryInterval)
		time.Sleep(retryInterval)
	}
	pool.Close()
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// ConnectMongo connects to the document store and returns the configured database
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	wait := retryInterval
	for i := 0; i < maxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = client.Ping(pingCtx, nil)
		cancel()
		if err == nil {
			log.Info().Str("database", cfg.Database).Msg("MongoDB connected")
			return client, client.Database(cfg.Database), nil
		}
		log.Warn().Err(err).Msgf("MongoDB ping failed (attempt %d/%d), retrying in %v", i+1, maxRetries, wait)
		time.Sleep(wait)
		wait *= 2
	}

	_ = client.Disconnect(context.Background())
	return nil, nil, fmt.Errorf("unable to connect to mongodb after %d attempts: %w", maxRetries, err)
}
