package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"polyglot/internal/language"
	"polyglot/internal/models"
	"polyglot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Getting Started with TypeScript in 2024", "getting-started-with-typescript-in-2024"},
		{"CI/CD Pipeline Setup", "ci-cd-pipeline-setup"},
		{"  Debugging Like a Pro!  ", "debugging-like-a-pro"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}

func TestTranslateTitle(t *testing.T) {
	assert.Equal(t, "Commencer with TypeScript in 2024", TranslateTitle("Getting Started with TypeScript in 2024", "fr"))
	assert.Equal(t, "[FR] GraphQL Fundamentals", TranslateTitle("GraphQL Fundamentals", "fr"))
	assert.Equal(t, "GraphQL Fundamentals", TranslateTitle("GraphQL Fundamentals", "en"))
}

func TestTranslateHTML(t *testing.T) {
	out := TranslateHTML("<h2>Intro</h2>\n<p>Body</p>\n<ul>\n<li>One</li>\n</ul>", "de")
	assert.Equal(t, "<h2>[DE] Intro</h2>\n<p>[DE] Body</p>\n<ul>\n<li>[DE] One</li>\n</ul>", out)
}

func TestGenerator_Post(t *testing.T) {
	gen := NewGenerator(42, seedNow, 0)

	b, err := gen.Post(3)
	require.NoError(t, err)

	assert.Equal(t, uint(3), b.Post.ID)
	assert.Equal(t, "mastering-css-grid-layout-3", b.Post.Slug)
	assert.True(t, b.Post.Status.Valid())
	assert.Len(t, b.Post.CategoryIDs, 2)
	assert.False(t, b.Post.CreatedAt.After(seedNow))
	assert.Equal(t, b.Post.ContentReferenceID, b.Content.ReferenceID)
	assert.Equal(t, b.Post.TranslationGroupID, b.Group.GroupID)
	assert.Equal(t, language.Default, b.Group.DefaultLanguage)

	require.NotNil(t, b.Content.Excerpt)
	assert.True(t, strings.HasSuffix(*b.Content.Excerpt, "..."))
	assert.NotContains(t, *b.Content.Excerpt, "<")
	assert.Positive(t, b.Content.WordCount)
	assert.Equal(t, b.Post.UpdatedAt, b.Content.LastModified)

	for _, tag := range []string{"<script", "<a ", "<em>", "id="} {
		assert.NotContains(t, b.Content.HTMLBody, tag)
	}

	require.GreaterOrEqual(t, len(b.Entries), 3)
	require.LessOrEqual(t, len(b.Entries), 6)
	require.Len(t, b.TranslatedContents, len(b.Entries))

	en := b.Entries[0]
	assert.Equal(t, language.Default, en.Language)
	assert.Equal(t, models.TranslationStatusComplete, en.TranslationStatus)
	assert.Nil(t, en.TranslatedBy)
	assert.Nil(t, en.LocaleSpecificSlug)
	assert.Equal(t, b.Content.HTMLBody, b.TranslatedContents[0].TranslatedHTML)
	assert.Nil(t, b.TranslatedContents[0].TranslationQualityScore)

	seen := map[string]bool{}
	for i, entry := range b.Entries[1:] {
		assert.False(t, seen[entry.Language], "duplicate language %s", entry.Language)
		seen[entry.Language] = true
		assert.NotEqual(t, language.Default, entry.Language)
		assert.Equal(t, uint(3), entry.PostID)
		require.NotNil(t, entry.LocaleSpecificSlug)
		assert.Equal(t, entry.Language+"-"+b.Post.Slug, *entry.LocaleSpecificSlug)
		require.NotNil(t, entry.TranslatedBy)
		assert.Regexp(t, `^translator-[1-5]$`, *entry.TranslatedBy)

		body := b.TranslatedContents[i+1]
		assert.Equal(t, entry.Language, body.Language)
		require.NotNil(t, body.TranslationQualityScore)
		assert.GreaterOrEqual(t, *body.TranslationQualityScore, 0.7)
		assert.LessOrEqual(t, *body.TranslationQualityScore, 1.0)
	}
}

func TestGenerator_SameSeedSameCorpus(t *testing.T) {
	a, err := NewGenerator(7, seedNow, 0).Post(1)
	require.NoError(t, err)
	b, err := NewGenerator(7, seedNow, 0).Post(1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerator_FallbackRowsHaveNoScore(t *testing.T) {
	gen := NewGenerator(1, seedNow, 1)
	b, err := gen.Post(1)
	require.NoError(t, err)

	for _, body := range b.TranslatedContents[1:] {
		assert.True(t, body.UsesFallback)
		assert.Nil(t, body.TranslationQualityScore)
		assert.Equal(t, b.Content.HTMLBody, body.TranslatedHTML)
	}
}

func TestSeed(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	result, err := Seed(ctx, db, Options{NumPosts: 12, RandomSeed: 99, Now: seedNow, FallbackRate: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 12, result.Posts)

	var posts int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 12, posts)

	var entries, bodies int64
	require.NoError(t, db.Model(&models.TranslationEntry{}).Count(&entries).Error)
	require.NoError(t, db.Model(&models.TranslatedContent{}).Count(&bodies).Error)
	assert.EqualValues(t, result.Entries, entries)
	assert.EqualValues(t, result.TranslatedContents, bodies)

	var scoredFallbacks int64
	require.NoError(t, db.Model(&models.TranslatedContent{}).
		Where("uses_fallback = ? AND translation_quality_score IS NOT NULL", true).
		Count(&scoredFallbacks).Error)
	assert.Zero(t, scoredFallbacks)

	var defaults int64
	require.NoError(t, db.Model(&models.TranslationEntry{}).
		Where("language = ? AND translation_status = ? AND translated_by IS NULL", language.Default, models.TranslationStatusComplete).
		Count(&defaults).Error)
	assert.EqualValues(t, 12, defaults)

	t.Run("ids continue without clean", func(t *testing.T) {
		_, err := Seed(ctx, db, Options{NumPosts: 3, RandomSeed: 100, Now: seedNow})
		require.NoError(t, err)

		var maxID uint
		require.NoError(t, db.Model(&models.Post{}).Select("MAX(id)").Scan(&maxID).Error)
		assert.Equal(t, uint(15), maxID)
	})

	t.Run("clean replaces the corpus", func(t *testing.T) {
		_, err := Seed(ctx, db, Options{NumPosts: 4, RandomSeed: 101, Now: seedNow, ShouldClean: true})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
		assert.EqualValues(t, 4, count)
		require.NoError(t, db.Model(&models.TranslationGroup{}).Count(&count).Error)
		assert.EqualValues(t, 4, count)
	})
}
