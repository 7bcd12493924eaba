package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// LeaderboardPanel renders the list body only. Player-supplied text is
// escaped; it is stored verbatim.
func LeaderboardPanel(view LeaderboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		switch {
		case view.State == BoardLoading:
			b.WriteString(`<div class="leaderboard" data-state="loading">Loading...</div>`)
		case view.State == BoardFailed:
			b.WriteString(`<div class="leaderboard" data-state="failed">Failed to load</div>`)
		case len(view.Rows) == 0:
			b.WriteString(`<div class="leaderboard" data-state="empty">No scores yet</div>`)
		default:
			b.WriteString(`<div class="leaderboard" data-state="loaded"><ol>`)
			for _, row := range view.Rows {
				b.WriteString(`<li value="`)
				b.WriteString(itoa(row.Rank))
				b.WriteString(`"><span class="name">`)
				b.WriteString(templ.EscapeString(row.Name))
				b.WriteString(`</span> <span class="score">`)
				b.WriteString(formatScore(row.Score))
				b.WriteString(`</span> <span class="mode">(`)
				b.WriteString(templ.EscapeString(row.Mode))
				b.WriteString(`)</span> <time>`)
				b.WriteString(formatTime(row.CreatedAt))
				b.WriteString(`</time></li>`)
			}
			b.WriteString(`</ol></div>`)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func LeaderboardPage(view LeaderboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Leaderboard</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 40rem; }
      .leaderboard li { padding: .25rem 0; }
      .leaderboard .score { font-weight: 600; }
      .leaderboard .mode, .leaderboard time { color: #666; }
      .leaderboard[data-state="failed"] { color: #b00020; }
    </style>
  </head>
  <body>
    <main>
      <h1>Leaderboard</h1>
      <p>Top `+itoa(view.Limit)+` runs.</p>
`); err != nil {
			return err
		}
		if err := LeaderboardPanel(view).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `
    </main>
  </body>
</html>
`)
		return err
	})
}
