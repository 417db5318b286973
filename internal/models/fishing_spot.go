// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// FishingSpot represents a named geolocation owned by a user.
type FishingSpot struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	// no default tag: GORM would omit false on insert; services set the default
	IsPublic bool `json:"is_public"`
	// OwnerName is not persisted; joined from users at query time
	OwnerName string `gorm:"->" json:"user_name"`
	// DistanceKm is not persisted; computed against the viewer position
	// for nearby searches, zero otherwise
	DistanceKm float64        `gorm:"-" json:"distance,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
