package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/wa-crm/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("SEARCH_TIMEOUT", "2s")
	t.Setenv("ROLE_CACHE_TTL", "not-a-duration")
	t.Setenv("REDIS_DB", "x")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Auth.RoleCacheTTL)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     "db",
			Port:     3306,
			User:     "crm",
			Password: "secret",
			Name:     "wacrm",
		},
	}

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "crm:secret@tcp(db:3306)/wacrm")
	assert.Contains(t, dsn, "parseTime=true")
}
