package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func render(t *testing.T, view LeaderboardView) string {
	t.Helper()
	var buf bytes.Buffer
	if err := LeaderboardPanel(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestLeaderboardPanelEscapesPlayerText(t *testing.T) {
	html := render(t, LeaderboardView{
		State: BoardLoaded,
		Rows: []LeaderboardRow{{
			Rank:      1,
			Name:      `<script>alert("x")</script>`,
			Score:     300,
			Mode:      `hard&"fast"`,
			CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		}},
	})
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected name escaped, got %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") || !strings.Contains(html, "hard&amp;") {
		t.Fatalf("expected escaped entities, got %s", html)
	}
	if !strings.Contains(html, "2025-01-01 09:00:00") {
		t.Fatalf("expected formatted timestamp, got %s", html)
	}
}

func TestLeaderboardPanelStates(t *testing.T) {
	cases := map[string]LeaderboardView{
		`data-state="loading"`: {State: BoardLoading},
		`data-state="failed"`:  {State: BoardFailed},
		`data-state="empty"`:   {State: BoardLoaded},
	}
	for marker, view := range cases {
		if html := render(t, view); !strings.Contains(html, marker) {
			t.Errorf("expected %s in %s", marker, html)
		}
	}
}

func TestLeaderboardPageWrapsPanel(t *testing.T) {
	var buf bytes.Buffer
	view := LeaderboardView{State: BoardLoaded, Limit: 20, Rows: []LeaderboardRow{{Rank: 1, Name: "Ada", Score: 5, Mode: "easy"}}}
	if err := LeaderboardPage(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if !strings.HasPrefix(html, "<!doctype html>") || !strings.Contains(html, "Ada") || !strings.Contains(html, "Top 20 runs.") {
		t.Fatalf("unexpected page %s", html)
	}
}
