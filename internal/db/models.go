package db

import "time"

// Score is one leaderboard row. Rows are append-only.
type Score struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:64;not null"`
	Score     int64     `gorm:"not null;index:idx_leaderboard_rank,priority:1"`
	Mode      string    `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_leaderboard_rank,priority:2"`
}

func (Score) TableName() string {
	return "leaderboard"
}
