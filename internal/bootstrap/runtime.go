// Package bootstrap wires the store and cache a process needs before serving.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"polyglot/internal/cache"
	"polyglot/internal/config"
	"polyglot/internal/database"
	"polyglot/internal/models"
	"polyglot/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	Migrate bool
	// SeedIfEmpty generates SeedPosts demo posts when the post table is empty.
	SeedIfEmpty bool
	SeedPosts   int
}

// OptionsFromConfig derives runtime options from the AUTO_MIGRATE and SEED_* settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Migrate:     cfg.AutoMigrate,
		SeedIfEmpty: cfg.SeedOnStart,
		SeedPosts:   cfg.SeedPosts,
	}
}

// InitRuntime connects to DB and Redis and optionally migrates and seeds.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Prepare(context.Background(), db, opts); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	// Redis is optional; a nil client means in-memory rate limiting.
	return db, cache.Connect(cfg.RedisURL), nil
}

// Prepare applies the schema and seed steps of opts to an open store.
func Prepare(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	if !opts.SeedIfEmpty {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count posts before seeding: %w", err)
	}
	if count > 0 {
		log.Printf("Skipping seed: %d posts already present", count)
		return nil
	}

	if _, err := seed.Seed(ctx, db, seed.Options{NumPosts: opts.SeedPosts}); err != nil {
		return fmt.Errorf("failed to seed demo content: %w", err)
	}
	return nil
}
