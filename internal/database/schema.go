package database

import (
	"context"
	"fmt"

	"polyglot/internal/middleware"
	"polyglot/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Post{},
		&models.Content{},
		&models.TranslationGroup{},
		&models.TranslationEntry{},
		&models.TranslatedContent{},
	}
}

// TableStatus reports whether one schema-managed table exists and how many rows it holds.
type TableStatus struct {
	Table  string
	Exists bool
	Rows   int64
}

// Migrate creates or updates every content table and its indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Database migration completed")
	return nil
}

// SchemaStatus lists each content table with its row count.
func SchemaStatus(ctx context.Context, db *gorm.DB) ([]TableStatus, error) {
	migrator := db.WithContext(ctx).Migrator()
	out := make([]TableStatus, 0, len(PersistentModels()))

	for _, model := range PersistentModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}

		status := TableStatus{Table: stmt.Schema.Table}
		if migrator.HasTable(model) {
			status.Exists = true
			if err := db.WithContext(ctx).Model(model).Count(&status.Rows).Error; err != nil {
				return nil, fmt.Errorf("count %s: %w", status.Table, err)
			}
		}
		out = append(out, status)
	}
	return out, nil
}

// Reset drops every content table.
func Reset(ctx context.Context, db *gorm.DB) error {
	all := PersistentModels()
	// Reverse order so dependent tables go first.
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.WithContext(ctx).Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table for %T: %w", all[i], err)
		}
	}
	return nil
}
