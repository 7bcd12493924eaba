package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scoreboard/internal/config"
	"scoreboard/internal/logging"
)

var dialects = []string{config.DriverPostgres, config.DriverMySQL}

func main() {
	name := flag.String("name", "", "migration name")
	flag.Parse()
	logger := logging.Setup(slog.LevelInfo)

	if *name == "" {
		logger.Error("migration name is required")
		os.Exit(1)
	}
	if strings.ContainsAny(*name, " /") {
		logger.Error("migration name must not contain spaces or slashes", "name", *name)
		os.Exit(1)
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, *name)
	for _, dialect := range dialects {
		dir := filepath.Join("db", "migrations", dialect)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("create migrations dir", "dir", dir, "error", err)
			os.Exit(1)
		}
		for _, direction := range []string{"up", "down"} {
			path := filepath.Join(dir, base+"."+direction+".sql")
			header := fmt.Sprintf("-- %s migration (%s)\n", direction, dialect)
			if err := writeFile(path, header); err != nil {
				logger.Error("create migration", "path", path, "error", err)
				os.Exit(1)
			}
			logger.Info("created migration", "path", path)
		}
	}
}

func writeFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
