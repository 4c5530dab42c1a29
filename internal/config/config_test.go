package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_VERSION", "DEBUG", "PORT", "HOST",
		"DATABASE_URL", "DATABASE_NAME", "ALLOWED_HOSTS",
		"UPLOAD_DIR", "MAX_UPLOAD_MB", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "sqlite:///./inquiries.db", cfg.Database.URL)
	assert.Empty(t, cfg.Database.Name)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, int64(100*1024*1024), cfg.Uploads.MaxBytes())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("DATABASE_URL", "postgresql://app:secret@db:5432/inquiries")
	t.Setenv("DATABASE_NAME", "inquiries")
	t.Setenv("ALLOWED_HOSTS", "https://example.com,https://www.example.com")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.True(t, cfg.Database.IsPostgres())
	assert.Equal(t, "inquiries", cfg.Database.Name)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(5*1024*1024), cfg.Uploads.MaxBytes())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non numeric port", "PORT", "http"},
		{"zero upload limit", "MAX_UPLOAD_MB", "0"},
		{"negative upload limit", "MAX_UPLOAD_MB", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_GetPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "full url",
			cfg:  DatabaseConfig{URL: "postgresql://app:secret@db:5433/inquiries"},
			want: "host=db port=5433 user=app dbname=inquiries sslmode=disable password=secret",
		},
		{
			name: "no database falls back to configured name",
			cfg:  DatabaseConfig{URL: "postgres://app@db", Name: "website"},
			want: "host=db port=5432 user=app dbname=website sslmode=disable",
		},
		{
			name: "no database and no name",
			cfg:  DatabaseConfig{URL: "postgres://app@db:5432"},
			want: "host=db port=5432 user=app dbname=postgres sslmode=disable",
		},
		{
			name: "already a dsn",
			cfg:  DatabaseConfig{URL: "host=db user=app dbname=x"},
			want: "host=db user=app dbname=x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetPostgresDSN())
		})
	}
}

func TestDatabaseConfig_SQLite(t *testing.T) {
	cfg := DatabaseConfig{URL: "sqlite:///./inquiries.db"}
	assert.True(t, cfg.IsSQLite())
	assert.False(t, cfg.IsPostgres())
	assert.Equal(t, "./inquiries.db", cfg.GetSQLitePath())

	mem := DatabaseConfig{URL: "file:test?mode=memory&cache=shared"}
	assert.Equal(t, "file:test?mode=memory&cache=shared", mem.GetSQLitePath())
}
