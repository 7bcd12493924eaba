package leaderboard

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"scoreboard/internal/web"
)

func TestBoardLoadsAndRendersEscaped(t *testing.T) {
	api := &fakeAPI{entries: []Entry{{Name: "<img src=x>", Score: 10, Mode: "a&b"}}}
	ts := startFake(t, api)
	board := NewBoard(NewClient(ts.URL, time.Second, nil), 10)

	<-board.Show(context.Background())
	state, entries, err := board.Snapshot()
	if state != web.BoardLoaded || err != nil || len(entries) != 1 {
		t.Fatalf("unexpected snapshot %v %#v %v", state, entries, err)
	}

	var buf bytes.Buffer
	if err := board.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "<img") || !strings.Contains(html, "&lt;img src=x&gt;") || !strings.Contains(html, "a&amp;b") {
		t.Fatalf("expected escaped output, got %s", html)
	}
}

func TestBoardShowsLoadingWhileInFlight(t *testing.T) {
	api := &fakeAPI{release: make(chan struct{})}
	ts := startFake(t, api)
	board := NewBoard(NewClient(ts.URL, time.Second, nil), 10)

	done := board.Show(context.Background())
	if state, _, _ := board.Snapshot(); state != web.BoardLoading {
		t.Fatalf("expected loading, got %v", state)
	}
	close(api.release)
	<-done
	if state, _, _ := board.Snapshot(); state != web.BoardLoaded {
		t.Fatalf("expected loaded, got %v", state)
	}
}

func TestBoardFailureIsDistinctFromEmpty(t *testing.T) {
	failing := startFake(t, &fakeAPI{status: http.StatusInternalServerError})
	board := NewBoard(NewClient(failing.URL, time.Second, nil), 10)
	<-board.Show(context.Background())
	state, _, err := board.Snapshot()
	if state != web.BoardFailed || err == nil {
		t.Fatalf("expected failed state, got %v %v", state, err)
	}

	empty := startFake(t, &fakeAPI{})
	board = NewBoard(NewClient(empty.URL, time.Second, nil), 10)
	<-board.Show(context.Background())
	if state, entries, err := board.Snapshot(); state != web.BoardLoaded || len(entries) != 0 || err != nil {
		t.Fatalf("expected loaded empty board, got %v %#v %v", state, entries, err)
	}
}

func TestBoardTimeoutResolvesToFailure(t *testing.T) {
	ts := startFake(t, &fakeAPI{delay: 300 * time.Millisecond})
	board := NewBoard(NewClient(ts.URL, 50*time.Millisecond, nil), 10)
	<-board.Show(context.Background())
	if state, _, _ := board.Snapshot(); state != web.BoardFailed {
		t.Fatalf("expected failed after timeout, got %v", state)
	}
}

func TestBoardIgnoresStaleResponse(t *testing.T) {
	api := &fakeAPI{release: make(chan struct{}), entries: []Entry{{Name: "Ada", Score: 1}}}
	ts := startFake(t, api)
	board := NewBoard(NewClient(ts.URL, time.Second, nil), 10)

	done := board.Show(context.Background())
	board.Hide()
	close(api.release)
	<-done

	if board.Visible() {
		t.Fatal("expected board hidden")
	}
	state, entries, _ := board.Snapshot()
	if state != web.BoardLoading || len(entries) != 0 {
		t.Fatalf("stale response was applied: %v %#v", state, entries)
	}
}

func TestBoardWithoutClientFails(t *testing.T) {
	board := NewBoard(nil, 10)
	<-board.Show(context.Background())
	state, entries, err := board.Snapshot()
	if state != web.BoardFailed || err == nil || len(entries) != 0 {
		t.Fatalf("expected failed board, got %v %#v %v", state, entries, err)
	}
}
