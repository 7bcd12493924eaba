package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoreboard/internal/config"
	"scoreboard/internal/db"
	"scoreboard/internal/logging"
	"scoreboard/internal/scores"
	"scoreboard/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	envErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.Setup(cfg.SlogLevel())
	if envErr != nil {
		logger.Warn("failed to load .env", "error", envErr)
	}
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(conn, logger); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	srv := server.New(scores.NewStore(conn, cfg), cfg, logger)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("scoreboard listening", "addr", httpServer.Addr, "driver", cfg.DBDriver)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("scoreboard stopped")
}
