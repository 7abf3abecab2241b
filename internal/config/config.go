package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DBTypePostgres = "postgres"
	DBTypeSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port      string
	GinMode   string
	JWTSecret string

	LogLevel  string
	LogFormat string

	CORSOrigins []string

	// Per client request limit applied to the API routes.
	LimiterEnabled bool
	LimiterRPS     float64
	LimiterBurst   int

	DBType     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string
}

// Load reads configs/.env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load("configs/.env")

	return Config{
		Port:      getenv("PORT", "8080"),
		GinMode:   getenv("GIN_MODE", "debug"),
		JWTSecret: strings.TrimSpace(getenv("JWT_SECRET", "")),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173")),
		DBType:     normalizeDBType(getenv("DB_TYPE", DBTypePostgres)),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		SQLitePath: getenv("SQLITE_PATH", "hrm.db"),

		LimiterEnabled: getenvBool("LIMITER_ENABLED", true),
		LimiterRPS:     getenvFloat("LIMITER_RPS", 10),
		LimiterBurst:   getenvInt("LIMITER_BURST", 20),
	}
}

// DSN returns the postgres connection URL.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// Secret returns the JWT signing key. Outside release mode an empty secret
// falls back to a development key.
func (c Config) Secret() []byte {
	if c.JWTSecret == "" {
		if c.GinMode == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		return []byte("default_super_secret_key")
	}
	return []byte(c.JWTSecret)
}

func normalizeDBType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DBTypeSQLite, "sqlite3":
		return DBTypeSQLite
	default:
		return DBTypePostgres
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getenv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenv(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenv(key, ""))
	if err != nil {
		return def
	}
	return v
}
