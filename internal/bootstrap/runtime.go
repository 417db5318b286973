// Package bootstrap wires runtime dependencies for the command entry points.
package bootstrap

import (
	"fmt"

	"creel/internal/cache"
	"creel/internal/config"
	"creel/internal/database"
	"creel/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	Seed     seed.Options
	RunSeed  bool
}

// InitRuntime connects to DB and Redis and optionally runs seeding.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.RunSeed {
		if err := seed.Seed(db, opts.Seed); err != nil {
			return nil, nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return db, r, nil
}
