package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.setDefaults()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 7, cfg.JWT.ExpireDays)
	assert.Equal(t, 40, cfg.Blog.SummaryLength)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.Blog.SummaryLength = 120
	cfg.setDefaults()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Blog.SummaryLength)
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "3000")

	cfg := &Config{}
	cfg.overrideFromEnv()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host: "localhost", Port: 5432, User: "blog",
		Password: "pw", DBName: "blog", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=blog password=pw dbname=blog sslmode=disable",
		cfg.GetDSN())
}
