package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ScoreRecord is one row of a legacy leaderboard export. Score is kept raw so
// it goes through the same coercion as a submitted score.
type ScoreRecord struct {
	Name      string
	Score     string
	Mode      string
	CreatedAt time.Time
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
}

// ReadScoreCSV reads name,score,mode[,created_at] rows. A leading header row
// is skipped when its first cell is "name".
func ReadScoreCSV(path string) ([]ScoreRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseScoreCSV(file)
}

func ParseScoreCSV(r io.Reader) ([]ScoreRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []ScoreRecord
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		if len(row) < 2 {
			continue
		}
		record := ScoreRecord{
			Name:  row[0],
			Score: strings.TrimSpace(row[1]),
		}
		if len(row) >= 3 {
			record.Mode = row[2]
		}
		if len(row) >= 4 {
			created, err := parseTimestamp(row[3])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			record.CreatedAt = created
		}
		records = append(records, record)
	}
	return records, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if value, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return value.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized created_at " + raw)
}
