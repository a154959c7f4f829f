package repository

import (
	"context"

	"polyglot/internal/models"

	"gorm.io/gorm"
)

// TranslationRepository reads translation groups and per-language content.
type TranslationRepository interface {
	GetGroup(ctx context.Context, groupID string) (*models.TranslationGroup, error)
	GetTranslatedContent(ctx context.Context, postID uint, language string) (*models.TranslatedContent, error)
	ListTranslatedContent(ctx context.Context, postIDs []uint) ([]models.TranslatedContent, error)
}

type translationRepository struct {
	db       *gorm.DB
	groups   instrument
	contents instrument
}

// NewTranslationRepository returns a TranslationRepository backed by db.
func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepository{
		db:       db,
		groups:   newInstrument(db, models.TranslationGroup{}.TableName()),
		contents: newInstrument(db, models.TranslatedContent{}.TableName()),
	}
}

// GetGroup loads the group row, then its entries ordered by id.
func (r *translationRepository) GetGroup(ctx context.Context, groupID string) (group *models.TranslationGroup, err error) {
	ctx, finish := r.groups.start(ctx, "GetGroup")
	defer func() { finish(err) }()

	var g models.TranslationGroup
	err = r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("group_id = ?", groupID).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetTranslatedContent returns the exact (post_id, language) row. There is no
// substitution of another language when it is absent.
func (r *translationRepository) GetTranslatedContent(ctx context.Context, postID uint, language string) (content *models.TranslatedContent, err error) {
	ctx, finish := r.contents.start(ctx, "GetTranslatedContent")
	defer func() { finish(err) }()

	var tc models.TranslatedContent
	err = r.db.WithContext(ctx).
		Where("post_id = ? AND language = ?", postID, language).
		First(&tc).Error
	if err != nil {
		return nil, err
	}
	return &tc, nil
}

// ListTranslatedContent returns every translated content row for the given post ids.
func (r *translationRepository) ListTranslatedContent(ctx context.Context, postIDs []uint) (contents []models.TranslatedContent, err error) {
	contents = make([]models.TranslatedContent, 0, len(postIDs))
	if len(postIDs) == 0 {
		return contents, nil
	}

	ctx, finish := r.contents.start(ctx, "ListTranslatedContent")
	defer func() { finish(err) }()

	err = r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("post_id ASC").
		Order("id ASC").
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}
