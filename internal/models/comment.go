// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a threaded message attached to a catch. ParentID, when
// set, must reference a comment on the same catch.
type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Content     string `gorm:"type:text;not null" json:"content"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	FishCatchID uint   `gorm:"not null;index" json:"fish_catch_id"`
	ParentID    *uint  `gorm:"index" json:"parent_id,omitempty"`
	// AuthorName is not persisted; joined from users at query time
	AuthorName string         `gorm:"->" json:"author_name"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
