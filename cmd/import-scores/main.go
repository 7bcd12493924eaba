package main

import (
	"context"
	"flag"
	"os"

	"scoreboard/internal/config"
	"scoreboard/internal/db"
	"scoreboard/internal/logging"
	"scoreboard/internal/scores"
)

func main() {
	filePath := flag.String("file", "leaderboard.csv", "path to a name,score,mode,created_at export")
	flag.Parse()

	envErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.Setup(cfg.SlogLevel())
	if envErr != nil {
		logger.Warn("failed to load .env", "error", envErr)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(conn, logger); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	records, err := db.ReadScoreCSV(*filePath)
	if err != nil {
		logger.Error("failed to read scores", "file", *filePath, "error", err)
		os.Exit(1)
	}

	store := scores.NewStore(conn, cfg)
	inserted, err := store.Import(context.Background(), records)
	if err != nil {
		attrs := append([]any{"error", err}, scores.DriverAttrs(err)...)
		logger.Error("import failed; nothing was written", attrs...)
		os.Exit(1)
	}
	logger.Info("imported scores", "count", inserted, "file", *filePath)
}
