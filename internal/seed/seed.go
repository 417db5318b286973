// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumCatches  int
	NumSpots    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d catches and %d spots...",
		opts.NumUsers, opts.NumCatches, opts.NumSpots)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	spots, err := f.CreateSpots(users, opts.NumSpots)
	if err != nil {
		return fmt.Errorf("failed to create fishing spots: %w", err)
	}
	log.Printf("✓ %d fishing spots created", len(spots))

	catches, err := f.CreateCatches(users, spots, opts.NumCatches)
	if err != nil {
		return fmt.Errorf("failed to create catches: %w", err)
	}
	log.Printf("✓ %d catches created", len(catches))

	likes, err := f.CreateLikes(users, catches)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("✓ %d likes created", likes)

	comments, err := f.CreateComments(users, catches)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	log.Println("🎣 Seeding complete")
	return nil
}

// clearData removes seeded rows in dependency order.
func clearData(db *gorm.DB) error {
	tables := []string{"comments", "likes", "fish_catches", "fishing_spots", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// pick returns a random element of the slice.
func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}
