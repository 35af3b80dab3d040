package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultPort     = "8080"
	defaultCacheTTL = 20 * time.Second
)

// Settings holds everything read from the environment at startup.
type Settings struct {
	AppEnv        string
	AppPort       string
	DBDriver      string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	CacheTTL      time.Duration
	// CORSOrigins lists browser origins allowed to call the API. Empty
	// disables CORS handling.
	CORSOrigins []string
}

var App Settings

// Init loads .env (if any) and the environment into App. Missing required
// values stop the process.
func Init() {
	initFrom(Load)
}

// InitCache is Init for tools that only talk to the page cache; database and
// token settings are neither read nor required.
func InitCache() {
	initFrom(LoadCache)
}

func initFrom(load func() (Settings, error)) {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	s, err := load()
	if err != nil {
		Logger.Fatal("Invalid configuration", zap.Error(err))
	}
	App = s
}

// Load reads Settings from the current environment without touching .env.
func Load() (Settings, error) {
	s := Settings{
		AppEnv:    os.Getenv("APP_ENV"),
		AppPort:   getenv("APP_PORT", defaultPort),
		DBDriver:  getenv("DB_DRIVER", DriverMySQL),
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if s.DBDSN == "" {
		return s, errMissing("DB_DSN")
	}
	if s.JWTSecret == "" {
		return s, errMissing("JWT_SECRET")
	}
	if s.DBDriver != DriverMySQL && s.DBDriver != DriverSQLite {
		return s, &settingError{name: "DB_DRIVER", reason: "must be mysql or sqlite"}
	}

	if err := loadCache(&s); err != nil {
		return s, err
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return s, &settingError{name: "CORS_ALLOWED_ORIGINS", reason: "must list http(s) origins"}
		}
		s.CORSOrigins = append(s.CORSOrigins, origin)
	}

	return s, nil
}

// LoadCache reads only the settings the page cache needs.
func LoadCache() (Settings, error) {
	s := Settings{AppEnv: os.Getenv("APP_ENV")}
	err := loadCache(&s)
	return s, err
}

func loadCache(s *Settings) error {
	s.RedisAddr = os.Getenv("REDIS_ADDR")
	s.RedisPassword = os.Getenv("REDIS_PASSWORD")
	s.CacheTTL = defaultCacheTTL

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return &settingError{name: "REDIS_DB", reason: "must be an integer"}
		}
		s.RedisDB = db
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return &settingError{name: "CACHE_TTL", reason: "must be a positive duration"}
		}
		s.CacheTTL = ttl
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type settingError struct {
	name   string
	reason string
}

func (e *settingError) Error() string { return e.name + " " + e.reason }

func errMissing(name string) error { return &settingError{name: name, reason: "is not set"} }
