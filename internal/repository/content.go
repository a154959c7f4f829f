package repository

import (
	"context"

	"polyglot/internal/models"

	"gorm.io/gorm"
)

// ContentRepository reads canonical post bodies.
type ContentRepository interface {
	GetByReferenceID(ctx context.Context, referenceID string) (*models.Content, error)
}

type contentRepository struct {
	db *gorm.DB
	in instrument
}

// NewContentRepository returns a ContentRepository backed by db.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db, in: newInstrument(db, models.Content{}.TableName())}
}

func (r *contentRepository) GetByReferenceID(ctx context.Context, referenceID string) (content *models.Content, err error) {
	ctx, finish := r.in.start(ctx, "GetByReferenceID")
	defer func() { finish(err) }()

	var c models.Content
	if err := r.db.WithContext(ctx).Where("reference_id = ?", referenceID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
