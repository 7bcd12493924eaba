package server

import (
	"net/http"

	"scoreboard/internal/scores"

	"github.com/gin-gonic/gin"
)

const maxSubmitBytes = 16 * 1024

type rankedRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

var rankedMessages = bindMessages{
	"Limit": {"min": "limit must be a positive integer"},
}

func (s *Server) handleSubmitScore(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmitBytes)
	sub, err := scores.DecodeSubmission(c.Request.Body)
	if err != nil {
		s.logger.Warn("score rejected", "error", err, "request_id", c.GetString(requestIDKey))
		c.JSON(statusFor(err), submitResponse{Success: false, Error: publicMessage(err)})
		return
	}
	entry, err := s.scores.Submit(c.Request.Context(), sub)
	if err != nil {
		s.logStoreError(c, "score insert failed", err)
		c.JSON(statusFor(err), submitResponse{Success: false, Error: publicMessage(err)})
		return
	}
	s.logger.Info("score saved", "name", entry.Name, "score", entry.Score, "mode", entry.Mode)
	c.JSON(http.StatusOK, submitResponse{Success: true})
}

func (s *Server) handleRankedScores(c *gin.Context) {
	var req rankedRequest
	if !bindQuery(c, &req, rankedMessages, "limit must be a positive integer") {
		return
	}
	entries, err := s.scores.RankedTop(c.Request.Context(), req.Limit)
	if err != nil {
		s.logStoreError(c, "leaderboard read failed", err)
		writeError(c, statusFor(err), publicMessage(err))
		return
	}
	c.JSON(http.StatusOK, entries)
}
