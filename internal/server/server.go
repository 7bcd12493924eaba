package server

import (
	"log/slog"
	"net/http"

	"scoreboard/internal/config"
	"scoreboard/internal/scores"

	"github.com/gin-gonic/gin"
)

type Server struct {
	scores *scores.Store
	cfg    config.Config
	logger *slog.Logger
}

func New(store *scores.Store, cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		scores: store,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/leaderboard")
	})
	router.GET("/leaderboard", s.handleLeaderboardView)

	api := router.Group("/api")
	api.POST("/scores", s.handleSubmitScore)
	api.GET("/scores", s.handleRankedScores)

	// paths the existing game client already calls
	router.POST("/save_score.php", s.handleSubmitScore)
	router.GET("/get_leaderboard.php", s.handleRankedScores)
	return router
}
