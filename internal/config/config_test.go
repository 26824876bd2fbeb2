package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "APP_ENV", "LOG_LEVEL", "STATIC_DIR", "JWT_SECRET_KEY", "JWT_EXPIRATION_HOURS",
		"STORE_DRIVER", "MONGO_URI", "MONGO_DATABASE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
	assert.Equal(t, "ewaste", cfg.Mongo.Database)
	assert.Empty(t, cfg.StaticDir)
}

func TestLoad_RequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}

func TestLoad_InvalidExpiryFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "Postgres")

	_, err := Load()
	require.Error(t, err, "postgres needs DB_* variables")

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "ewaste")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "ewaste")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "host=localhost port=5432 user=ewaste password=pw dbname=ewaste sslmode=disable", cfg.Postgres.DSN)
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORE_DRIVER", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}
