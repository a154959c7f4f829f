// Package seed fills the content store with generated multilingual posts for
// development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"polyglot/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPosts    int
	ShouldClean bool
	// FallbackRate is the chance a non-default translation echoes the default
	// HTML instead of carrying its own.
	FallbackRate float64
	// RandomSeed fixes the generated corpus; 0 picks one at random.
	RandomSeed int64
	Now        time.Time
}

// DefaultNumPosts matches the size of the demo corpus.
const DefaultNumPosts = 200

// Result counts the rows written by one Seed run.
type Result struct {
	Posts              int
	Entries            int
	TranslatedContents int
}

const batchSize = 100

// Seed generates opts.NumPosts posts and writes them in a single transaction.
// Post ids continue after the highest existing id unless ShouldClean is set.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	if opts.NumPosts <= 0 {
		opts.NumPosts = DefaultNumPosts
	}
	log.Printf("🌱 Starting database seed (%d posts)...", opts.NumPosts)

	var result Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.ShouldClean {
			log.Println("🧹 Cleaning existing data...")
			if err := clearData(tx); err != nil {
				return err
			}
		}

		var maxID uint
		if err := tx.Model(&models.Post{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return fmt.Errorf("read max post id: %w", err)
		}

		gen := NewGenerator(opts.RandomSeed, opts.Now, opts.FallbackRate)
		var (
			posts    = make([]models.Post, 0, opts.NumPosts)
			contents = make([]models.Content, 0, opts.NumPosts)
			groups   = make([]models.TranslationGroup, 0, opts.NumPosts)
			entries  []models.TranslationEntry
			bodies   []models.TranslatedContent
		)
		for i := 1; i <= opts.NumPosts; i++ {
			b, err := gen.Post(maxID + uint(i))
			if err != nil {
				return err
			}
			posts = append(posts, b.Post)
			contents = append(contents, b.Content)
			groups = append(groups, b.Group)
			entries = append(entries, b.Entries...)
			bodies = append(bodies, b.TranslatedContents...)
		}

		// Groups go before entries so the entry foreign key always resolves.
		steps := []struct {
			name string
			rows interface{}
		}{
			{"translation groups", &groups},
			{"translation entries", &entries},
			{"content", &contents},
			{"posts", &posts},
			{"translated content", &bodies},
		}
		for _, step := range steps {
			if err := tx.CreateInBatches(step.rows, batchSize).Error; err != nil {
				return fmt.Errorf("insert %s: %w", step.name, err)
			}
			log.Printf("  ✓ %s", step.name)
		}

		// Explicit ids leave the postgres sequence behind.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(`SELECT setval(pg_get_serial_sequence('post_meta', 'id'), GREATEST((SELECT COALESCE(MAX(id), 1) FROM post_meta), 1), true)`).Error; err != nil {
				return fmt.Errorf("failed to reset post_meta sequence: %w", err)
			}
		}

		result = Result{Posts: len(posts), Entries: len(entries), TranslatedContents: len(bodies)}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	log.Printf("✅ Seeded %d posts, %d translation entries, %d translated bodies",
		result.Posts, result.Entries, result.TranslatedContents)
	return result, nil
}

// clearData deletes every content row, children first.
func clearData(tx *gorm.DB) error {
	all := []interface{}{
		&models.TranslatedContent{},
		&models.TranslationEntry{},
		&models.TranslationGroup{},
		&models.Post{},
		&models.Content{},
	}
	session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range all {
		if err := session.Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}
