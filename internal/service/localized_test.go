package service

import (
	"context"
	"errors"
	"testing"

	"polyglot/internal/featureflags"
	"polyglot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func localizedFixture() (*postRepoStub, *translationRepoStub) {
	posts := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			if id != 7 {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.Post{
				ID:                 7,
				Slug:               "hello-world-7",
				AuthorID:           3,
				Status:             models.PostStatusPublished,
				CreatedAt:          fixedTime,
				UpdatedAt:          fixedTime,
				ContentReferenceID: "ref-7",
				TranslationGroupID: "group-7",
				CategoryIDs:        datatypes.JSONSlice[int64]{2, 5},
			}, nil
		},
	}
	translations := &translationRepoStub{
		getGroupFn: func(_ context.Context, id string) (*models.TranslationGroup, error) {
			if id != "group-7" {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.TranslationGroup{
				GroupID:         id,
				DefaultLanguage: "en",
				Entries: []models.TranslationEntry{
					{ID: 1, Language: "en", PostID: 7, Title: "Hello World", TranslationStatus: models.TranslationStatusComplete},
					{ID: 2, Language: "jp", PostID: 7, Title: "[JP] Hello World", TranslationStatus: models.TranslationStatusMachine},
					{ID: 3, Language: "fr", PostID: 7, Title: "Bonjour le monde", TranslationStatus: models.TranslationStatusPartial,
						LocaleSpecificSlug: ptr("fr-hello-world-7"), TranslatedBy: ptr("translator-4"), TranslatedAt: ptr(fixedTime)},
					{ID: 4, Language: "de", PostID: 7, Title: "Hallo Welt", TranslationStatus: models.TranslationStatusMissing},
				},
			}, nil
		},
		getTranslatedContentFn: func(_ context.Context, postID uint, lang string) (*models.TranslatedContent, error) {
			switch lang {
			case "fr":
				return &models.TranslatedContent{PostID: postID, Language: lang, TranslatedHTML: "<p>Bonjour</p>", TranslationQualityScore: ptr(0.81)}, nil
			case "jp":
				return &models.TranslatedContent{PostID: postID, Language: lang, TranslatedHTML: "<p>Hello</p>", UsesFallback: true, TranslationQualityScore: ptr(0.4)}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		listTranslatedContentFn: func(_ context.Context, postIDs []uint) ([]models.TranslatedContent, error) {
			return []models.TranslatedContent{
				{PostID: 7, Language: "en"},
				{PostID: 7, Language: "fr"},
				{PostID: 7, Language: "jp", UsesFallback: true},
			}, nil
		},
	}
	return posts, translations
}

func TestGetLocalizedPost(t *testing.T) {
	ctx := context.Background()

	t.Run("merges post entry and content", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := newTestService(posts, nil, translations)

		view, err := svc.GetLocalizedPost(ctx, 7, "fr")
		require.NoError(t, err)
		assert.Equal(t, "hello-world-7", view.Slug)
		assert.Equal(t, "fr-hello-world-7", *view.LocaleSpecificSlug)
		assert.Equal(t, "Bonjour le monde", view.Title)
		assert.Equal(t, "<p>Bonjour</p>", view.HTML)
		assert.Equal(t, models.TranslationStatusPartial, view.TranslationStatus)
		assert.Equal(t, "translator-4", *view.TranslatedBy)
		assert.Equal(t, []int64{2, 5}, view.CategoryIDs)
		assert.False(t, view.UsesFallback)
		assert.InDelta(t, 0.81, *view.QualityScore, 1e-9)
	})

	t.Run("both signals listed in canonical order", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := newTestService(posts, nil, translations)

		view, err := svc.GetLocalizedPost(ctx, 7, "jp")
		require.NoError(t, err)
		assert.True(t, view.UsesFallback)
		assert.Nil(t, view.QualityScore, "fallback content never carries a score")

		assert.Equal(t, []AvailableTranslation{
			{Language: "en", TranslationStatus: models.TranslationStatusComplete, HasContent: true},
			{Language: "fr", TranslationStatus: models.TranslationStatusPartial, HasContent: true},
			{Language: "de", TranslationStatus: models.TranslationStatusMissing},
			{Language: "jp", TranslationStatus: models.TranslationStatusMachine, HasContent: true, UsesFallback: true},
		}, view.AvailableTranslations)
	})

	t.Run("invalid language first", func(t *testing.T) {
		svc := newTestService(&postRepoStub{}, nil, &translationRepoStub{})
		_, err := svc.GetLocalizedPost(ctx, 7, "xx")
		assertCode(t, err, models.CodeInvalidLanguage)
	})

	t.Run("unknown post", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := newTestService(posts, nil, translations)
		_, err := svc.GetLocalizedPost(ctx, 8, "en")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("language without entry", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := newTestService(posts, nil, translations)
		_, err := svc.GetLocalizedPost(ctx, 7, "cs")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("entry without content", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := newTestService(posts, nil, translations)
		_, err := svc.GetLocalizedPost(ctx, 7, "de")
		assertCode(t, err, models.CodeNotFound)
	})

	t.Run("missing group is internal", func(t *testing.T) {
		posts, translations := localizedFixture()
		translations.getGroupFn = func(context.Context, string) (*models.TranslationGroup, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := newTestService(posts, nil, translations)

		_, err := svc.GetLocalizedPost(ctx, 7, "en")
		assertCode(t, err, models.CodeInternal)
		assert.Contains(t, err.Error(), "group-7")
	})

	t.Run("content listing failure", func(t *testing.T) {
		posts, translations := localizedFixture()
		translations.listTranslatedContentFn = func(context.Context, []uint) ([]models.TranslatedContent, error) {
			return nil, errors.New("timeout")
		}
		svc := newTestService(posts, nil, translations)

		_, err := svc.GetLocalizedPost(ctx, 7, "fr")
		assertCode(t, err, models.CodeInternal)
	})

	t.Run("flag off", func(t *testing.T) {
		posts, translations := localizedFixture()
		svc := NewContentService(posts, &contentRepoStub{}, translations, featureflags.NewManager("localized_view=off"))

		assert.False(t, svc.LocalizedViewEnabled(7))
		_, err := svc.GetLocalizedPost(ctx, 7, "fr")
		assertCode(t, err, models.CodeNotFound)
	})
}
