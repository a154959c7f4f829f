// Package models contains data structures for the blog's content store.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// PostStatus defines the publication state of a post.
type PostStatus string

const (
	// PostStatusPublished marks a post as publicly visible.
	PostStatusPublished PostStatus = "published"
	// PostStatusDraft marks a post still being written.
	PostStatusDraft PostStatus = "draft"
	// PostStatusArchived marks a retired post. Archived is a status, not a tombstone.
	PostStatusArchived PostStatus = "archived"
)

// Valid reports whether s is one of the known post statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPublished, PostStatusDraft, PostStatusArchived:
		return true
	}
	return false
}

// Post is the metadata record of a blog post. Content and translations live in
// separate tables and are reached through ContentReferenceID and TranslationGroupID.
type Post struct {
	ID                 uint                       `gorm:"primaryKey" json:"id"`
	Slug               string                     `gorm:"size:255;not null;uniqueIndex:idx_post_meta_slug" json:"slug"`
	AuthorID           uint                       `gorm:"not null" json:"author_id"`
	Status             PostStatus                 `gorm:"type:varchar(20);not null;index:idx_post_meta_status;check:status IN ('published','draft','archived')" json:"status"`
	CreatedAt          time.Time                  `gorm:"not null;index" json:"created_at"`
	UpdatedAt          time.Time                  `gorm:"not null" json:"updated_at"`
	ContentReferenceID string                     `gorm:"size:64;not null" json:"content_reference_id"`
	TranslationGroupID string                     `gorm:"size:64;not null" json:"translation_group_id"`
	CategoryIDs        datatypes.JSONSlice[int64] `gorm:"not null" json:"category_ids"`
	FeaturedImageID    *uint                      `json:"featured_image_id,omitempty"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "post_meta"
}
