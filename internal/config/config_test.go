package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("CORS_MAX_AGE", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, time.Hour, cfg.CORSMaxAge)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("SEED_CATEGORIES", "false")
	t.Setenv("LOG_RETENTION_DAYS", "7")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.False(t, cfg.SeedCategories)
	assert.Equal(t, 7, cfg.LogRetentionDays)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "lots")
	t.Setenv("JWT_REFRESH_EXPIRY", "forever")

	cfg := Load()

	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.JWTRefreshExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "h", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "1", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable TimeZone=UTC", cfg.DSN())
}
