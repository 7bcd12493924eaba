package scores

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength = 64
	MaxModeLength = 32
	DefaultName   = "Anon"
	DefaultMode   = "unknown"
)

// Points is a score as sent by a client. Any JSON value decodes: numbers are
// truncated toward zero, numeric strings are parsed, everything else is 0.
type Points int64

func (p *Points) UnmarshalJSON(data []byte) error {
	*p = Points(coercePoints(bytes.TrimSpace(data)))
	return nil
}

func coercePoints(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return 0
		}
		return ParsePoints(text)
	case 't':
		return 1
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return ParsePoints(string(data))
	}
	return 0
}

// ParsePoints reads an integer from free text. A leading numeric prefix is
// accepted ("42abc" is 42); anything without one is 0.
func ParsePoints(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value
	}
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return clampFloat(value)
	}
	end := 0
	if text[0] == '-' || text[0] == '+' {
		end = 1
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	if value, err := strconv.ParseInt(text[:end], 10, 64); err == nil {
		return value
	}
	if text[0] == '-' {
		return math.MinInt64
	}
	return math.MaxInt64
}

func clampFloat(value float64) int64 {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt64:
		return math.MaxInt64
	case value <= math.MinInt64:
		return math.MinInt64
	}
	return int64(value)
}

// Text is a free-form label as sent by a client. Strings are kept as is,
// numbers keep their literal text, and any other JSON value is empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		*t = Text(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(data)
	}
	return nil
}

// Submission is the raw submit payload. Every field is optional.
type Submission struct {
	Name  Text   `json:"name"`
	Score Points `json:"score"`
	Mode  Text   `json:"mode"`
}

// Normalized is a submission ready to persist.
type Normalized struct {
	Name  string
	Score int64
	Mode  string
}

func Normalize(sub Submission) Normalized {
	return Normalized{
		Name:  normalizeText(string(sub.Name), MaxNameLength, DefaultName),
		Score: int64(sub.Score),
		Mode:  normalizeText(string(sub.Mode), MaxModeLength, DefaultMode),
	}
}

func normalizeText(value string, limit int, fallback string) string {
	value = strings.TrimSpace(strings.ToValidUTF8(value, ""))
	if utf8.RuneCountInString(value) > limit {
		value = strings.TrimSpace(string([]rune(value)[:limit]))
	}
	if value == "" {
		return fallback
	}
	return value
}

// DecodeSubmission reads one JSON object from r. An empty body, malformed
// JSON, or a non-object value is ErrInvalidInput.
func DecodeSubmission(r io.Reader) (Submission, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Submission{}, invalidInput("unreadable body")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Submission{}, invalidInput("no input")
	}
	if raw[0] != '{' {
		return Submission{}, invalidInput("expected a JSON object")
	}
	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return Submission{}, invalidInput("invalid JSON")
	}
	return sub, nil
}
