package web

import "time"

type BoardState string

const (
	BoardLoading BoardState = "loading"
	BoardLoaded  BoardState = "loaded"
	BoardFailed  BoardState = "failed"
)

type LeaderboardRow struct {
	Rank      int
	Name      string
	Score     int64
	Mode      string
	CreatedAt time.Time
}

// LeaderboardView is what a leaderboard panel shows. A loaded view with no
// rows is an empty board, which is distinct from a failed one.
type LeaderboardView struct {
	State BoardState
	Rows  []LeaderboardRow
	Limit int
}
