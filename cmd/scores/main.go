package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"scoreboard/internal/config"
	"scoreboard/internal/leaderboard"
	"scoreboard/internal/logging"
	"scoreboard/internal/web"
)

const usage = `usage:
  scores submit -name NAME -score N [-mode MODE]
  scores top [-limit N] [-html]
`

func main() {
	envErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.Setup(cfg.SlogLevel())
	if envErr != nil {
		logger.Warn("failed to load .env", "error", envErr)
	}
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client := leaderboard.NewClient(cfg.ServerURL, time.Duration(cfg.ClientTimeoutSeconds)*time.Second, logger)
	var err error
	switch os.Args[1] {
	case "submit":
		err = runSubmit(client, cfg, logger, os.Args[2:])
	case "top":
		err = runTop(client, cfg, os.Stdout, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

// runSubmit plays the game-over step of a single session. The process waits
// for the background submission only so it is not cut off by exit.
func runSubmit(client *leaderboard.Client, cfg config.Config, logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	name := fs.String("name", "", "player name")
	score := fs.Int64("score", 0, "final score")
	mode := fs.String("mode", "", "difficulty or category")
	_ = fs.Parse(args)

	path := cfg.HighScorePath
	if path == "" {
		path = leaderboard.DefaultHighScorePath()
	}
	best, err := leaderboard.OpenFileHighScores(path)
	if err != nil {
		logger.Warn("local high score unreadable; starting fresh", "path", path, "error", err)
	}

	result := leaderboard.NewSession(client, best, logger).GameOver(*score, *name, *mode)
	if result.NewBest {
		logger.Info("new local high score", "best", result.Best)
	} else {
		logger.Info("local high score", "best", result.Best)
	}
	if err := <-result.Submitted; err != nil {
		return err
	}
	logger.Info("score submitted", "score", *score)
	return nil
}

func runTop(client *leaderboard.Client, cfg config.Config, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	limit := fs.Int("limit", cfg.DefaultLimit, "number of entries")
	asHTML := fs.Bool("html", false, "render the leaderboard panel as HTML")
	_ = fs.Parse(args)

	ctx := context.Background()
	entries, err := client.Top(ctx, *limit)
	if *asHTML {
		state := web.BoardLoaded
		if err != nil {
			state = web.BoardFailed
		}
		if renderErr := web.LeaderboardPanel(leaderboard.View(state, entries, *limit)).Render(ctx, out); renderErr != nil {
			return renderErr
		}
		fmt.Fprintln(out)
		return err
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores yet")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSCORE\tMODE\tWHEN")
	for i, entry := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, entry.Name, entry.Score, entry.Mode, entry.CreatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}
