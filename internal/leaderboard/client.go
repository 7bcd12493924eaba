package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultTimeout = 5 * time.Second

// Entry is one ranked row as served by the score API.
type Entry struct {
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// Score is what the game reports at game over.
type Score struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
	Mode  string `json:"mode"`
}

// StatusError is a non-2xx answer from the score API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("leaderboard: status %d", e.Code)
	}
	return fmt.Sprintf("leaderboard: status %d: %s", e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for the API at baseURL. Every request is bounded
// by timeout so a hung server always resolves to an error.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) Submit(ctx context.Context, score Score) error {
	payload, err := json.Marshal(score)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scores", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	var ack struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return fmt.Errorf("leaderboard: decode ack: %w", err)
	}
	if !ack.Success {
		return &StatusError{Code: resp.StatusCode, Message: ack.Error}
	}
	return nil
}

// SubmitAsync sends score in the background and never retries. The returned
// channel yields the outcome once and may be ignored.
func (c *Client) SubmitAsync(score Score) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := c.Submit(context.Background(), score)
		if err != nil {
			c.logger.Warn("score submission failed", "error", err, "score", score.Score, "mode", score.Mode)
		} else {
			c.logger.Debug("score submitted", "score", score.Score, "mode", score.Mode)
		}
		done <- err
	}()
	return done
}

// Top fetches up to limit ranked entries. A limit of zero leaves the server
// default in place.
func (c *Client) Top(ctx context.Context, limit int) ([]Entry, error) {
	endpoint := c.baseURL + "/api/scores"
	if limit > 0 {
		endpoint += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode entries: %w", err)
	}
	if entries == nil {
		// a JSON null is not an empty leaderboard
		return nil, fmt.Errorf("leaderboard: decode entries: expected array")
	}
	return entries, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error
	}
	return &StatusError{Code: resp.StatusCode, Message: message}
}
