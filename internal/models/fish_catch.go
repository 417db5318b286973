// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// FishCatch represents a shared catch record.
type FishCatch struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FishType     string  `gorm:"not null" json:"fish_type"`
	Weight       float64 `gorm:"not null" json:"weight"`
	Description  string  `gorm:"type:text" json:"description"`
	Latitude     float64 `gorm:"not null" json:"latitude"`
	Longitude    float64 `gorm:"not null" json:"longitude"`
	LocationName string  `gorm:"not null" json:"location_name"`
	ImageURL     string  `json:"image_url"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	// no default tag: GORM would omit false on insert; services set the default
	IsPublic bool `json:"is_public"`
	// OwnerName is not persisted; joined from users at query time
	OwnerName string `gorm:"->" json:"user_name"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments"`
	// Liked indicates whether the current requesting user liked this catch (computed)
	Liked     bool           `gorm:"->" json:"is_liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
