package server

import (
	"net/http"

	"scoreboard/internal/scores"
	"scoreboard/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleLeaderboardView(c *gin.Context) {
	var req rankedRequest
	// a page always renders; a bad limit falls back to the default rather
	// than the 400 the JSON endpoint returns
	if err := c.ShouldBindQuery(&req); err != nil {
		req.Limit = 0
	}
	view := web.LeaderboardView{
		State: web.BoardLoaded,
		Limit: s.scores.ClampLimit(req.Limit),
	}
	status := http.StatusOK
	entries, err := s.scores.RankedTop(c.Request.Context(), view.Limit)
	if err != nil {
		s.logStoreError(c, "leaderboard view failed", err)
		view.State = web.BoardFailed
		status = http.StatusServiceUnavailable
	} else {
		view.Rows = rowsFor(entries)
	}
	templ.Handler(web.LeaderboardPage(view), templ.WithStatus(status)).ServeHTTP(c.Writer, c.Request)
}

func rowsFor(entries []scores.Entry) []web.LeaderboardRow {
	rows := make([]web.LeaderboardRow, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, web.LeaderboardRow{
			Rank:      i + 1,
			Name:      entry.Name,
			Score:     entry.Score,
			Mode:      entry.Mode,
			CreatedAt: entry.CreatedAt,
		})
	}
	return rows
}
