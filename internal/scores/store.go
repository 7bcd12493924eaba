package scores

import (
	"context"
	"time"

	"scoreboard/internal/config"
	"scoreboard/internal/db"

	"gorm.io/gorm"
)

// Entry is the public view of a leaderboard row. The surrogate id is never
// exposed.
type Entry struct {
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the append-only score table. It holds no mutable state of its own;
// concurrent callers are serialized by the database.
type Store struct {
	db           *gorm.DB
	now          func() time.Time
	defaultLimit int
	maxLimit     int
}

func NewStore(conn *gorm.DB, cfg config.Config) *Store {
	return &Store{
		db:           conn,
		now:          time.Now,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

// Submit normalizes sub and appends exactly one row.
func (s *Store) Submit(ctx context.Context, sub Submission) (Entry, error) {
	if s == nil || s.db == nil {
		return Entry{}, storeUnavailable("no database configured", nil)
	}
	normalized := Normalize(sub)
	record := db.Score{
		Name:      normalized.Name,
		Score:     normalized.Score,
		Mode:      normalized.Mode,
		CreatedAt: s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return Entry{}, storeUnavailable("insert score", err)
	}
	return entryFromRecord(record), nil
}

// RankedTop returns at most limit entries ordered by score descending, then
// by insert time ascending. A limit of zero or less means the default; larger
// values are clamped to the configured maximum.
func (s *Store) RankedTop(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, storeUnavailable("no database configured", nil)
	}
	limit = s.ClampLimit(limit)
	entries := make([]Entry, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&db.Score{}).
		Select("name", "score", "mode", "created_at").
		Order("score DESC").
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, storeUnavailable("read leaderboard", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	for i := range entries {
		entries[i].CreatedAt = entries[i].CreatedAt.UTC()
	}
	return entries, nil
}

func (s *Store) ClampLimit(limit int) int {
	if s == nil {
		s = &Store{}
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit <= 0 {
		limit = 20
	}
	maxLimit := s.maxLimit
	if maxLimit <= 0 {
		maxLimit = 100
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

// Count reports the number of persisted rows.
func (s *Store) Count(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, storeUnavailable("no database configured", nil)
	}
	var total int64
	if err := s.db.WithContext(ctx).Model(&db.Score{}).Count(&total).Error; err != nil {
		return 0, storeUnavailable("count scores", err)
	}
	return total, nil
}

// Import appends legacy rows in one transaction. Each row is normalized like
// a submission; rows without a timestamp get the current time.
func (s *Store) Import(ctx context.Context, records []db.ScoreRecord) (int, error) {
	if s == nil || s.db == nil {
		return 0, storeUnavailable("no database configured", nil)
	}
	if len(records) == 0 {
		return 0, nil
	}
	now := s.now().UTC()
	rows := make([]db.Score, 0, len(records))
	for _, record := range records {
		normalized := Normalize(Submission{
			Name:  Text(record.Name),
			Score: Points(ParsePoints(record.Score)),
			Mode:  Text(record.Mode),
		})
		created := record.CreatedAt
		if created.IsZero() {
			created = now
		}
		rows = append(rows, db.Score{
			Name:      normalized.Name,
			Score:     normalized.Score,
			Mode:      normalized.Mode,
			CreatedAt: created.UTC(),
		})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, 100).Error
	})
	if err != nil {
		return 0, storeUnavailable("import scores", err)
	}
	return len(rows), nil
}

func entryFromRecord(record db.Score) Entry {
	return Entry{
		Name:      record.Name,
		Score:     record.Score,
		Mode:      record.Mode,
		CreatedAt: record.CreatedAt.UTC(),
	}
}
