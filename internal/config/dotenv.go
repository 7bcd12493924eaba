package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Port                     string
	DBDriver                 string
	DatabaseURL              string
	SQLitePath               string
	DBHost                   string
	DBPort                   string
	DBName                   string
	DBUser                   string
	DBPass                   string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	DefaultLimit             int
	MaxLimit                 int
	LogLevel                 string
	ServerURL                string
	ClientTimeoutSeconds     int
	HighScorePath            string
}

func Default() Config {
	return Config{
		Port:                     "8080",
		DBDriver:                 DriverSQLite,
		SQLitePath:               "leaderboard.sqlite",
		DBHost:                   "localhost",
		DBPort:                   "3306",
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		DefaultLimit:             20,
		MaxLimit:                 100,
		LogLevel:                 "info",
		ServerURL:                "http://localhost:8080",
		ClientTimeoutSeconds:     5,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := firstEnv("DB_DRIVER", "DB_TYPE"); raw != "" {
		cfg.DBDriver = NormalizeDriver(raw)
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.DatabaseURL = raw
	}
	if raw := os.Getenv("SQLITE_PATH"); raw != "" {
		cfg.SQLitePath = raw
	}
	if raw := os.Getenv("DB_HOST"); raw != "" {
		cfg.DBHost = raw
	}
	if raw := os.Getenv("DB_PORT"); raw != "" {
		cfg.DBPort = raw
	}
	if raw := os.Getenv("DB_NAME"); raw != "" {
		cfg.DBName = raw
	}
	if raw := os.Getenv("DB_USER"); raw != "" {
		cfg.DBUser = raw
	}
	if raw := os.Getenv("DB_PASS"); raw != "" {
		cfg.DBPass = raw
	}
	positiveInt("DB_MAX_OPEN_CONNS", &cfg.DBMaxOpenConns)
	positiveInt("DB_MAX_IDLE_CONNS", &cfg.DBMaxIdleConns)
	positiveInt("DB_CONN_MAX_LIFETIME_SECONDS", &cfg.DBConnMaxLifetimeSeconds)
	positiveInt("DB_CONN_MAX_IDLE_SECONDS", &cfg.DBConnMaxIdleTimeSeconds)
	positiveInt("LEADERBOARD_DEFAULT_LIMIT", &cfg.DefaultLimit)
	positiveInt("LEADERBOARD_MAX_LIMIT", &cfg.MaxLimit)
	if cfg.DefaultLimit > cfg.MaxLimit {
		cfg.DefaultLimit = cfg.MaxLimit
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = raw
	}
	if raw := os.Getenv("SCOREBOARD_URL"); raw != "" {
		cfg.ServerURL = strings.TrimRight(raw, "/")
	}
	positiveInt("CLIENT_TIMEOUT_SECONDS", &cfg.ClientTimeoutSeconds)
	if raw := os.Getenv("HIGHSCORE_PATH"); raw != "" {
		cfg.HighScorePath = raw
	}
	return cfg
}

// NormalizeDriver maps the accepted backend names onto a driver constant.
// Unknown names are returned lowercased so db.Open can reject them.
func NormalizeDriver(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "", "sqlite", "sqlite3", "embedded-file", "file":
		return DriverSQLite
	case "postgres", "postgresql", "pg":
		return DriverPostgres
	case "mysql", "mariadb", "networked-sql":
		return DriverMySQL
	}
	return name
}

// SlogLevel parses LogLevel, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if raw := os.Getenv(key); raw != "" {
			return raw
		}
	}
	return ""
}

func positiveInt(key string, dest *int) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		*dest = value
	}
}
