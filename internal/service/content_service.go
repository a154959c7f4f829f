// Package service resolves multilingual content from the store into the shapes served over HTTP.
package service

import (
	"context"
	"errors"
	"fmt"

	"polyglot/internal/featureflags"
	"polyglot/internal/language"
	"polyglot/internal/middleware"
	"polyglot/internal/models"
	"polyglot/internal/observability"
	"polyglot/internal/repository"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

const serviceName = "ContentService"

// ContentService answers the read-only content queries. Each query is a
// separate call against its own table; nothing here joins across them.
type ContentService struct {
	postRepo        repository.PostRepository
	contentRepo     repository.ContentRepository
	translationRepo repository.TranslationRepository
	flags           *featureflags.Manager
	tracer          *observability.TraceLayer
	anomalies       *observability.RepoLogger
}

// PostPage is one window of the post listing.
type PostPage struct {
	Items   []models.Post
	Total   int64
	Page    int
	PerPage int
}

// LanguageCatalogue lists the languages content can be requested in.
type LanguageCatalogue struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

func NewContentService(
	postRepo repository.PostRepository,
	contentRepo repository.ContentRepository,
	translationRepo repository.TranslationRepository,
	flags *featureflags.Manager,
) *ContentService {
	return &ContentService{
		postRepo:        postRepo,
		contentRepo:     contentRepo,
		translationRepo: translationRepo,
		flags:           flags,
		tracer:          observability.GetTraceLayer(),
		anomalies:       observability.NewRepoLogger(models.TranslatedContent{}.TableName(), middleware.Logger),
	}
}

// GetPostMeta returns the post metadata row for id.
func (s *ContentService) GetPostMeta(ctx context.Context, id uint) (post *models.Post, err error) {
	ctx, done := s.begin(ctx, "GetPostMeta")
	defer func() { done(err) }()

	post, err = s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, models.NewNotFoundError("Post with id", id))
	}
	return post, nil
}

// GetContent returns the canonical body stored under referenceID, whether or
// not any post references it.
func (s *ContentService) GetContent(ctx context.Context, referenceID string) (content *models.Content, err error) {
	ctx, done := s.begin(ctx, "GetContent")
	defer func() { done(err) }()

	content, err = s.contentRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, mapStoreError(err, models.NewNotFoundError("Content with reference_id", referenceID))
	}
	return content, nil
}

// GetTranslationGroup returns the group with its entries folded into a map
// keyed by language. A language missing from the map was never translated,
// which is distinct from an entry whose status is "missing".
func (s *ContentService) GetTranslationGroup(ctx context.Context, groupID string) (group *models.TranslationGroup, err error) {
	ctx, done := s.begin(ctx, "GetTranslationGroup")
	defer func() { done(err) }()

	group, err = s.translationRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, mapStoreError(err, models.NewNotFoundError("Translation group with id", groupID))
	}
	s.foldEntries(ctx, group)
	return group, nil
}

// GetTranslatedContent returns the exact (postID, lang) row. The language is
// validated before the store is touched, and there is no fallback to the
// default language when the row is absent.
func (s *ContentService) GetTranslatedContent(ctx context.Context, postID uint, lang string) (content *models.TranslatedContent, err error) {
	ctx, done := s.begin(ctx, "GetTranslatedContent")
	defer func() { done(err) }()

	if err = language.Validate(lang); err != nil {
		return nil, err
	}

	content, err = s.translationRepo.GetTranslatedContent(ctx, postID, lang)
	if err != nil {
		return nil, mapStoreError(err, &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("Translated content for post %d in language %s not found", postID, lang),
		})
	}
	s.scrub(ctx, "GetTranslatedContent", content)
	return content, nil
}

// ListPosts returns posts newest first. page is raised to 1 and perPage is
// clamped to [1, MaxPerPage]; a page past the end yields no items.
func (s *ContentService) ListPosts(ctx context.Context, page, perPage int) (result *PostPage, err error) {
	ctx, done := s.begin(ctx, "ListPosts")
	defer func() { done(err) }()

	page, perPage = ClampPage(page, perPage)

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	items, err := s.postRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if items == nil {
		items = []models.Post{}
	}

	return &PostPage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// Languages returns the supported language codes in canonical order.
func (s *ContentService) Languages() LanguageCatalogue {
	return LanguageCatalogue{Default: language.Default, Languages: language.Codes()}
}

// ClampPage applies the listing bounds to raw paging input.
func ClampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func (s *ContentService) begin(ctx context.Context, operation string) (context.Context, func(error)) {
	ctx, span := s.tracer.TraceServiceMethod(ctx, serviceName, operation)
	return ctx, func(err error) {
		observability.RecordOutcome(operation, outcomeOf(err))
		if models.IsNotFound(err) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}
}

// foldEntries builds group.Translations. Entries arrive ordered by id, so on a
// duplicated language the first row wins.
func (s *ContentService) foldEntries(ctx context.Context, group *models.TranslationGroup) {
	group.Translations = make(map[string]models.TranslationEntry, len(group.Entries))
	for _, entry := range group.Entries {
		if _, seen := group.Translations[entry.Language]; seen {
			s.anomalies.LogAnomaly(ctx, "GetTranslationGroup", "duplicate translation entry ignored", map[string]any{
				"group_id": group.GroupID,
				"language": entry.Language,
				"entry_id": entry.ID,
			})
			continue
		}
		group.Translations[entry.Language] = entry
	}
}

func (s *ContentService) scrub(ctx context.Context, operation string, content *models.TranslatedContent) {
	if !content.ScrubFallbackScore() {
		return
	}
	observability.FallbackScoresScrubbed.Inc()
	s.anomalies.LogAnomaly(ctx, operation, "quality score cleared on fallback content", map[string]any{
		"post_id":  content.PostID,
		"language": content.Language,
	})
}

// mapStoreError turns a missing row into notFound and anything else into an
// internal error that keeps the cause for logging.
func mapStoreError(err error, notFound *models.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return models.NewInternalError(err)
}

func outcomeOf(err error) string {
	var appErr *models.AppError
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.As(err, &appErr) && appErr.Code == models.CodeNotFound:
		return observability.OutcomeNotFound
	case errors.As(err, &appErr) && appErr.Code == models.CodeInvalidLanguage:
		return observability.OutcomeInvalidLanguage
	default:
		return observability.OutcomeError
	}
}
