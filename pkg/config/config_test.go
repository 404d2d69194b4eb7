package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Mail.Configured())
}

func TestLoad_MalformedPortFallsBackToDefault(t *testing.T) {
	t.Setenv("PORT", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTP.Port)
}

func TestLoad_NumericEnvParsed(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5433, cfg.DB.Port)
}

func TestLoad_AllowedOriginsSplitAndTrimmed(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.ch, https://staging.example.ch ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://app.example.ch", "https://staging.example.ch"},
		cfg.CORS.AllowedOrigins,
	)
}

func TestDBConfig_DatabaseURLWins(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/handwerkpro",
		Host:        "ignored",
	}
	assert.Equal(t, "postgres://u:p@db:5432/handwerkpro", cfg.ConnectionString())
}

func TestDBConfig_DSNEncodesPassword(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/w:rd",
		DBName:   "handwerkpro",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fw:rd@localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
}
