package testutil

import (
	"strconv"
	"testing"
	"time"

	"polyglot/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MustCreate inserts each value in order and fails the test on the first error.
func MustCreate(t testing.TB, db *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, db.Create(v).Error)
	}
}

// NewPost returns a published post whose content reference and group ids derive from id.
func NewPost(id uint, createdAt time.Time) *models.Post {
	return &models.Post{
		ID:                 id,
		Slug:               "post-" + itoa(id),
		AuthorID:           1,
		Status:             models.PostStatusPublished,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		ContentReferenceID: "content-" + itoa(id),
		TranslationGroupID: "group-" + itoa(id),
		CategoryIDs:        datatypes.JSONSlice[int64]{1, 2},
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
