package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"polyglot/internal/featureflags"
	"polyglot/internal/language"
	"polyglot/internal/models"
)

// LocalizedPost is the denormalized read view of a post in one language. It is
// derived from the normalized tables on every call and never stored.
type LocalizedPost struct {
	ID                    uint                     `json:"id"`
	Slug                  string                   `json:"slug"`
	LocaleSpecificSlug    *string                  `json:"locale_specific_slug,omitempty"`
	Language              string                   `json:"language"`
	Title                 string                   `json:"title"`
	MetaDescription       *string                  `json:"meta_description,omitempty"`
	Status                models.PostStatus        `json:"status"`
	AuthorID              uint                     `json:"author_id"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
	CategoryIDs           []int64                  `json:"category_ids"`
	FeaturedImageID       *uint                    `json:"featured_image_id,omitempty"`
	TranslationStatus     models.TranslationStatus `json:"translation_status"`
	TranslatedBy          *string                  `json:"translated_by,omitempty"`
	TranslatedAt          *time.Time               `json:"translated_at,omitempty"`
	HTML                  string                   `json:"html"`
	UsesFallback          bool                     `json:"uses_fallback"`
	QualityScore          *float64                 `json:"translation_quality_score,omitempty"`
	AvailableTranslations []AvailableTranslation   `json:"available_translations"`
}

// AvailableTranslation reports both signals for one language of a group: the
// entry's status and whether its content is fallback HTML. HasContent is false
// when no translated content row exists for the entry.
type AvailableTranslation struct {
	Language          string                   `json:"language"`
	TranslationStatus models.TranslationStatus `json:"translation_status"`
	HasContent        bool                     `json:"has_content"`
	UsesFallback      bool                     `json:"uses_fallback"`
}

// LocalizedViewEnabled reports whether the localized view is served for postID.
// Percentage rollouts bucket by post id so a post is either always or never localized.
func (s *ContentService) LocalizedViewEnabled(postID uint) bool {
	return s.flags.Enabled(featureflags.LocalizedView, strconv.FormatUint(uint64(postID), 10))
}

// GetLocalizedPost merges post metadata, the group entry for lang and that
// entry's translated content. The group must exist for an existing post; its
// absence is reported as an internal error rather than NOT_FOUND.
func (s *ContentService) GetLocalizedPost(ctx context.Context, postID uint, lang string) (view *LocalizedPost, err error) {
	ctx, done := s.begin(ctx, "GetLocalizedPost")
	defer func() { done(err) }()

	if err = language.Validate(lang); err != nil {
		return nil, err
	}
	if !s.LocalizedViewEnabled(postID) {
		return nil, models.NewNotFoundError("Localized view for post", postID)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, mapStoreError(err, models.NewNotFoundError("Post with id", postID))
	}

	group, err := s.translationRepo.GetGroup(ctx, post.TranslationGroupID)
	if err != nil {
		return nil, mapStoreError(err, models.NewInternalError(
			fmt.Errorf("post %d references missing translation group %q", post.ID, post.TranslationGroupID),
		))
	}
	s.foldEntries(ctx, group)

	entry, ok := group.Translations[lang]
	if !ok {
		return nil, &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("Post %d has no %s translation", postID, lang),
		}
	}

	content, err := s.translationRepo.GetTranslatedContent(ctx, entry.PostID, lang)
	if err != nil {
		return nil, mapStoreError(err, &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("Translated content for post %d in language %s not found", entry.PostID, lang),
		})
	}
	s.scrub(ctx, "GetLocalizedPost", content)

	available, err := s.availableTranslations(ctx, group)
	if err != nil {
		return nil, err
	}

	return &LocalizedPost{
		ID:                    post.ID,
		Slug:                  post.Slug,
		LocaleSpecificSlug:    entry.LocaleSpecificSlug,
		Language:              lang,
		Title:                 entry.Title,
		MetaDescription:       entry.MetaDescription,
		Status:                post.Status,
		AuthorID:              post.AuthorID,
		CreatedAt:             post.CreatedAt,
		UpdatedAt:             post.UpdatedAt,
		CategoryIDs:           []int64(post.CategoryIDs),
		FeaturedImageID:       post.FeaturedImageID,
		TranslationStatus:     entry.TranslationStatus,
		TranslatedBy:          entry.TranslatedBy,
		TranslatedAt:          entry.TranslatedAt,
		HTML:                  content.TranslatedHTML,
		UsesFallback:          content.UsesFallback,
		QualityScore:          content.TranslationQualityScore,
		AvailableTranslations: available,
	}, nil
}

// availableTranslations lists every entry of group in canonical language
// order. Codes outside the supported set sort last, alphabetically.
func (s *ContentService) availableTranslations(ctx context.Context, group *models.TranslationGroup) ([]AvailableTranslation, error) {
	postIDs := make([]uint, 0, len(group.Translations))
	for _, entry := range group.Translations {
		postIDs = append(postIDs, entry.PostID)
	}

	contents, err := s.translationRepo.ListTranslatedContent(ctx, postIDs)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	type key struct {
		postID uint
		lang   string
	}
	fallback := make(map[key]bool, len(contents))
	for _, c := range contents {
		fallback[key{c.PostID, c.Language}] = c.UsesFallback
	}

	out := make([]AvailableTranslation, 0, len(group.Translations))
	for lang, entry := range group.Translations {
		usesFallback, has := fallback[key{entry.PostID, lang}]
		out = append(out, AvailableTranslation{
			Language:          lang,
			TranslationStatus: entry.TranslationStatus,
			HasContent:        has,
			UsesFallback:      usesFallback,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		pi, pj := language.Position(out[i].Language), language.Position(out[j].Language)
		switch {
		case pi == -1 && pj == -1:
			return out[i].Language < out[j].Language
		case pi == -1:
			return false
		case pj == -1:
			return true
		}
		return pi < pj
	})
	return out, nil
}
