package leaderboard

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrAlreadyOver is reported when a session has already handled game over.
var ErrAlreadyOver = errors.New("leaderboard: game over already reported")

// Session bridges one play-through to the score API.
type Session struct {
	client *Client
	best   HighScores
	logger *slog.Logger
	once   sync.Once
}

// GameOverResult reports the local bookkeeping, which is final when
// GameOver returns, and the pending server submission.
type GameOverResult struct {
	Best      int64
	NewBest   bool
	Submitted <-chan error
}

func NewSession(client *Client, best HighScores, logger *slog.Logger) *Session {
	if best == nil {
		best = &MemoryHighScores{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{client: client, best: best, logger: logger}
}

// GameOver records the local best synchronously and starts the submission
// without waiting for it. Only the first call per session does anything.
func (s *Session) GameOver(score int64, name, mode string) GameOverResult {
	result := GameOverResult{Best: s.best.Best()}
	fired := false
	s.once.Do(func() {
		fired = true
		best, improved, err := s.best.Record(score)
		if err != nil {
			s.logger.Warn("saving local high score failed", "error", err)
		}
		result.Best = best
		result.NewBest = improved
		if s.client == nil {
			result.Submitted = finished(nil)
			return
		}
		result.Submitted = s.client.SubmitAsync(Score{Name: name, Score: score, Mode: mode})
	})
	if !fired {
		result.Submitted = finished(ErrAlreadyOver)
	}
	return result
}

func finished(err error) <-chan error {
	done := make(chan error, 1)
	done <- err
	close(done)
	return done
}
