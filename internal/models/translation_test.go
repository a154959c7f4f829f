package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatedContent_BeforeSave(t *testing.T) {
	score := 0.87

	tests := []struct {
		name      string
		content   TranslatedContent
		expectErr bool
	}{
		{"translation with score", TranslatedContent{UsesFallback: false, TranslationQualityScore: &score}, false},
		{"original language without score", TranslatedContent{UsesFallback: false}, false},
		{"fallback without score", TranslatedContent{UsesFallback: true}, false},
		{"fallback with score", TranslatedContent{UsesFallback: true, TranslationQualityScore: &score}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.BeforeSave(nil)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, CodeValidation, appErr.Code)
		})
	}
}

func TestTranslatedContent_ScrubFallbackScore(t *testing.T) {
	score := 0.5
	tc := TranslatedContent{UsesFallback: true, TranslationQualityScore: &score}

	assert.True(t, tc.ScrubFallbackScore())
	assert.Nil(t, tc.TranslationQualityScore)
	assert.False(t, tc.ScrubFallbackScore())

	translated := TranslatedContent{TranslationQualityScore: &score}
	assert.False(t, translated.ScrubFallbackScore())
	assert.NotNil(t, translated.TranslationQualityScore)
}

func TestTranslationEntry_JSONOmitsAbsentOptionals(t *testing.T) {
	entry := TranslationEntry{
		ID:                1,
		GroupID:           "g1",
		Language:          "en",
		PostID:            7,
		Title:             "Hello",
		TranslationStatus: TranslationStatusComplete,
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(7), decoded["post_id"])
	assert.Equal(t, "complete", decoded["translation_status"])
	assert.NotContains(t, decoded, "translated_by")
	assert.NotContains(t, decoded, "translated_at")
	assert.NotContains(t, decoded, "group_id")
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, PostStatusArchived.Valid())
	assert.False(t, PostStatus("deleted").Valid())
	assert.True(t, TranslationStatusMachine.Valid())
	assert.False(t, TranslationStatus("unknown").Valid())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("Post", 3)))
	assert.False(t, IsNotFound(NewInternalError(errors.New("boom"))))
	assert.False(t, IsNotFound(nil))
}
