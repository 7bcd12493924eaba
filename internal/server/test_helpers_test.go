package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"scoreboard/internal/config"
	"scoreboard/internal/db"
	"scoreboard/internal/scores"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "scores.sqlite")
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

// startServer wires a fresh sqlite store behind the full router.
func startServer(t *testing.T) (*httptest.Server, *scores.Store, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conn := openTestDB(t)
	cfg := config.Default()
	store := scores.NewStore(conn, cfg)
	srv := New(store, cfg, nil)
	return newTestServer(t, srv.Handler()), store, conn
}
