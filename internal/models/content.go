package models

import "time"

// Content is the canonical body of a post, keyed by an opaque reference id so it
// can be stored and versioned independently of the post row.
type Content struct {
	ReferenceID    string    `gorm:"primaryKey;size:64" json:"reference_id"`
	HTMLBody       string    `gorm:"type:text;not null" json:"html_body"`
	Excerpt        *string   `gorm:"type:text" json:"excerpt,omitempty"`
	WordCount      int       `gorm:"not null" json:"word_count"`
	LastModified   time.Time `gorm:"not null" json:"last_modified"`
	RevisionNumber int       `gorm:"not null" json:"revision_number"`
}

// TableName specifies the table name for GORM.
func (Content) TableName() string {
	return "post_content"
}
