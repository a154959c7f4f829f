// Command main runs the demo content seeder.
package main

import (
	"context"
	"flag"
	"log"

	"polyglot/internal/config"
	"polyglot/internal/database"
	"polyglot/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", seed.DefaultNumPosts, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fallbackRate := flag.Float64("fallback", 0, "Share of translations that echo the default-language HTML (0-1)")
	randomSeed := flag.Int64("seed", 0, "Random seed for a reproducible corpus (0 = random)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d posts, clean=%v\n", *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if _, err := seed.Seed(ctx, db, seed.Options{
		NumPosts:     *numPosts,
		ShouldClean:  *shouldClean,
		FallbackRate: *fallbackRate,
		RandomSeed:   *randomSeed,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo content.")
}
