package repository

import (
	"context"

	"polyglot/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines read operations over post metadata.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
	in instrument
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, in: newInstrument(db, models.Post{}.TableName())}
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (post *models.Post, err error) {
	ctx, finish := r.in.start(ctx, "GetByID")
	defer func() { finish(err) }()

	var p models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one window of posts, newest first. The id tie-breaker keeps
// pages disjoint when several posts share a created_at.
func (r *postRepository) List(ctx context.Context, limit, offset int) (posts []models.Post, err error) {
	ctx, finish := r.in.start(ctx, "List")
	defer func() { finish(err) }()

	posts = make([]models.Post, 0)
	err = r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of posts of every status.
func (r *postRepository) Count(ctx context.Context) (total int64, err error) {
	ctx, finish := r.in.start(ctx, "Count")
	defer func() { finish(err) }()

	err = r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error
	return total, err
}
