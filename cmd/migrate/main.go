package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"scoreboard/internal/config"
	"scoreboard/internal/db"
	"scoreboard/internal/logging"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration")
	flag.Parse()

	envErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.Setup(cfg.SlogLevel())
	if envErr != nil {
		logger.Warn("failed to load .env", "error", envErr)
	}

	databaseURL, err := migrationURL(cfg)
	if err != nil {
		logger.Error("migration setup failed", "error", err)
		os.Exit(1)
	}
	m, err := migrate.New("file://db/migrations/"+cfg.DBDriver, databaseURL)
	if err != nil {
		logger.Error("migration setup failed", "error", err)
		os.Exit(1)
	}
	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	version, dirty, _ := m.Version()
	logger.Info("database migrations applied", "driver", cfg.DBDriver, "version", version, "dirty", dirty)
}

// migrationURL builds the scheme-prefixed URL golang-migrate expects. The
// embedded backend is created by the server's auto-migration instead.
func migrationURL(cfg config.Config) (string, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return "", errors.New("DATABASE_URL is not set")
		}
		return cfg.DatabaseURL, nil
	case config.DriverMySQL:
		dsn, err := db.MySQLDSN(cfg)
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(dsn, "mysql://") {
			return dsn, nil
		}
		return "mysql://" + dsn, nil
	}
	return "", errors.New("versioned migrations support postgres and mysql; sqlite is created on server start")
}
