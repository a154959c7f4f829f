package models

import (
	"time"

	"gorm.io/gorm"
)

// TranslationStatus is the quality/provenance marker of a translation entry.
// It is independent of whether translated content exists.
type TranslationStatus string

const (
	TranslationStatusComplete TranslationStatus = "complete"
	TranslationStatusPartial  TranslationStatus = "partial"
	TranslationStatusMachine  TranslationStatus = "machine"
	TranslationStatusMissing  TranslationStatus = "missing"
)

// Valid reports whether s is one of the known translation statuses.
func (s TranslationStatus) Valid() bool {
	switch s {
	case TranslationStatusComplete, TranslationStatusPartial, TranslationStatusMachine, TranslationStatusMissing:
		return true
	}
	return false
}

// TranslationGroup ties together every language version of one post.
// DefaultLanguage names the authoritative language for the group.
type TranslationGroup struct {
	GroupID         string             `gorm:"primaryKey;size:64" json:"group_id"`
	DefaultLanguage string             `gorm:"size:8;not null" json:"default_language"`
	Entries         []TranslationEntry `gorm:"foreignKey:GroupID;references:GroupID" json:"-"`
	// Translations is Entries folded by language code; filled on read.
	Translations map[string]TranslationEntry `gorm:"-" json:"translations"`
}

// TableName specifies the table name for GORM.
func (TranslationGroup) TableName() string {
	return "translation_group"
}

// TranslationEntry is the per-language metadata of a post inside a group.
// PostID is the language-specific post identity used to look up translated
// content; it is not necessarily the id of the post that owns the group.
type TranslationEntry struct {
	ID                 uint              `gorm:"primaryKey" json:"-"`
	GroupID            string            `gorm:"size:64;not null;uniqueIndex:idx_translation_entry_group_language;index:idx_translation_entry_group" json:"-"`
	Language           string            `gorm:"size:8;not null;uniqueIndex:idx_translation_entry_group_language" json:"-"`
	PostID             uint              `gorm:"not null" json:"post_id"`
	Title              string            `gorm:"not null" json:"title"`
	MetaDescription    *string           `json:"meta_description,omitempty"`
	LocaleSpecificSlug *string           `json:"locale_specific_slug,omitempty"`
	TranslationStatus  TranslationStatus `gorm:"type:varchar(20);not null;check:translation_status IN ('complete','partial','machine','missing')" json:"translation_status"`
	TranslatedBy       *string           `json:"translated_by,omitempty"`
	TranslatedAt       *time.Time        `json:"translated_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (TranslationEntry) TableName() string {
	return "translation_entry"
}

// TranslatedContent is the HTML of a post in one language, keyed by the
// language-specific post id. UsesFallback means the HTML is the default-language
// HTML echoed because no real translation exists yet.
type TranslatedContent struct {
	ID                      uint     `gorm:"primaryKey" json:"-"`
	PostID                  uint     `gorm:"not null;uniqueIndex:idx_translated_content_post_language;index:idx_translated_content_post" json:"post_id"`
	Language                string   `gorm:"size:8;not null;uniqueIndex:idx_translated_content_post_language" json:"language"`
	TranslatedHTML          string   `gorm:"type:text;not null" json:"translated_html"`
	TranslationQualityScore *float64 `json:"translation_quality_score,omitempty"`
	UsesFallback            bool     `gorm:"not null;default:false" json:"uses_fallback"`
}

// TableName specifies the table name for GORM.
func (TranslatedContent) TableName() string {
	return "translated_content"
}

// BeforeSave rejects rows that would carry a quality score for fallback HTML.
func (tc *TranslatedContent) BeforeSave(_ *gorm.DB) error {
	if tc.UsesFallback && tc.TranslationQualityScore != nil {
		return NewValidationError("translated content using fallback must not carry a quality score")
	}
	return nil
}

// ScrubFallbackScore clears a quality score stored against a fallback row.
// It reports whether the row violated the invariant.
func (tc *TranslatedContent) ScrubFallbackScore() bool {
	if tc.UsesFallback && tc.TranslationQualityScore != nil {
		tc.TranslationQualityScore = nil
		return true
	}
	return false
}
