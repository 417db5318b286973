package models

import "time"

// Like represents a user's like on a catch.
// The combination of UserID and FishCatchID must be unique; rows are hard
// deleted so the unique constraint and engagement counts stay exact.
type Like struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_catch" json:"user_id"`
	FishCatchID uint      `gorm:"not null;uniqueIndex:idx_user_catch" json:"fish_catch_id"`
	CreatedAt   time.Time `json:"created_at"`
}
