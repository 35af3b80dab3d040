package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "file::memory:")
	t.Setenv("JWT_SECRET", "secret")
	for _, k := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", s.AppPort)
	assert.Equal(t, DriverMySQL, s.DBDriver)
	assert.Equal(t, 20*time.Second, s.CacheTTL)
	assert.Empty(t, s.RedisAddr)
	assert.Zero(t, s.RedisDB)
	assert.Empty(t, s.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://yatube.example, http://localhost:3000,")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", s.AppPort)
	assert.Equal(t, DriverSQLite, s.DBDriver)
	assert.Equal(t, "localhost:6379", s.RedisAddr)
	assert.Equal(t, 3, s.RedisDB)
	assert.Equal(t, time.Minute, s.CacheTTL)
	assert.Equal(t, []string{"https://yatube.example", "http://localhost:3000"}, s.CORSOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]struct {
		key, value, want string
	}{
		"missing dsn":    {"DB_DSN", "", "DB_DSN is not set"},
		"missing secret": {"JWT_SECRET", "", "JWT_SECRET is not set"},
		"driver":         {"DB_DRIVER", "postgres", "DB_DRIVER must be mysql or sqlite"},
		"redis db":       {"REDIS_DB", "one", "REDIS_DB must be an integer"},
		"ttl":            {"CACHE_TTL", "-5s", "CACHE_TTL must be a positive duration"},
		"cors":           {"CORS_ALLOWED_ORIGINS", "yatube.example", "CORS_ALLOWED_ORIGINS must list http(s) origins"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestOpenDBUnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "dsn")
	assert.Error(t, err)
}

func TestLoadCacheIgnoresServerSettings(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "45s")

	s, err := LoadCache()
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", s.RedisAddr)
	assert.Equal(t, 2, s.RedisDB)
	assert.Equal(t, 45*time.Second, s.CacheTTL)
	assert.Empty(t, s.DBDSN)

	_, err = Load()
	assert.EqualError(t, err, "DB_DSN is not set")
}

func TestLoadCacheRejectsBadValues(t *testing.T) {
	setRequired(t)
	t.Setenv("CACHE_TTL", "soon")

	_, err := LoadCache()
	assert.EqualError(t, err, "CACHE_TTL must be a positive duration")
}
