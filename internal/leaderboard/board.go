package leaderboard

import (
	"context"
	"errors"
	"io"
	"sync"

	"scoreboard/internal/web"
)

var errNoClient = errors.New("leaderboard: no client configured")

// Board is the on-demand leaderboard view. Each Show starts a new generation;
// a response that arrives after a newer Show or a Hide is dropped.
type Board struct {
	client *Client
	limit  int

	mu         sync.Mutex
	generation uint64
	visible    bool
	state      web.BoardState
	entries    []Entry
	err        error
}

func NewBoard(client *Client, limit int) *Board {
	return &Board{client: client, limit: limit, state: web.BoardLoading}
}

// Show switches the board to loading and fetches in the background. The
// returned channel closes when this generation's fetch has settled.
func (b *Board) Show(ctx context.Context) <-chan struct{} {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.visible = true
	b.state = web.BoardLoading
	b.entries = nil
	b.err = nil
	b.mu.Unlock()

	done := make(chan struct{})
	if b.client == nil {
		b.apply(gen, nil, errNoClient)
		close(done)
		return done
	}
	go func() {
		defer close(done)
		entries, err := b.client.Top(ctx, b.limit)
		b.apply(gen, entries, err)
	}()
	return done
}

// Hide leaves the view; any in-flight fetch is ignored when it lands.
func (b *Board) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generation++
	b.visible = false
}

func (b *Board) apply(gen uint64, entries []Entry, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return
	}
	if err != nil {
		b.state = web.BoardFailed
		b.err = err
		return
	}
	b.state = web.BoardLoaded
	b.entries = entries
}

// Snapshot returns the current state, entries and last error.
func (b *Board) Snapshot() (web.BoardState, []Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	return b.state, entries, b.err
}

func (b *Board) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Render writes the panel for the current state. Names and modes are escaped.
func (b *Board) Render(ctx context.Context, w io.Writer) error {
	state, entries, _ := b.Snapshot()
	return web.LeaderboardPanel(View(state, entries, b.limit)).Render(ctx, w)
}

func View(state web.BoardState, entries []Entry, limit int) web.LeaderboardView {
	view := web.LeaderboardView{State: state, Limit: limit}
	for i, entry := range entries {
		view.Rows = append(view.Rows, web.LeaderboardRow{
			Rank:      i + 1,
			Name:      entry.Name,
			Score:     entry.Score,
			Mode:      entry.Mode,
			CreatedAt: entry.CreatedAt,
		})
	}
	return view
}
