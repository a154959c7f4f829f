package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	env := Success(map[string]int{"id": 1}, "req-123")

	assert.True(t, env.Success)
	assert.Equal(t, 1, env.Data["id"])
	assert.Equal(t, "req-123", env.Meta.RequestID)

	ts, err := time.Parse(time.RFC3339, env.Meta.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestMetaGeneratesRequestID(t *testing.T) {
	a := NewMeta("")
	b := NewMeta("")

	_, err := uuid.Parse(a.RequestID)
	require.NoError(t, err)
	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Len(t, a.Timestamp, len("2024-01-02T03:04:05.000Z"))
}

func TestFailureOmitsNilDetails(t *testing.T) {
	raw, err := json.Marshal(Failure("NOT_FOUND", "Post 9 not found", nil, "r1"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, false, decoded["success"])

	body := decoded["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Post 9 not found", body["message"])
	assert.NotContains(t, body, "details")
	assert.Equal(t, "r1", decoded["meta"].(map[string]any)["request_id"])
}

func TestFailureKeepsDetails(t *testing.T) {
	env := Failure("INVALID_LANGUAGE", "bad", map[string]any{"valid_languages": []string{"en"}}, "")
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"details":{"valid_languages":["en"]}`)
}

func TestPaginatedEncodesEmptyList(t *testing.T) {
	raw, err := json.Marshal(Paginated[int](nil, NewPagination(99, 20, 200), "r"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
	assert.Contains(t, string(raw), `"pagination":{"page":99,"per_page":20,"total":200,"total_pages":10}`)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		page, perPage int
		total         int64
		expected      int
	}{
		{"exact multiple", 1, 20, 200, 10},
		{"partial last page", 1, 20, 201, 11},
		{"single item", 1, 100, 1, 1},
		{"empty table", 1, 20, 0, 0},
		{"per page of one", 3, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.expected, p.TotalPages)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.perPage, p.PerPage)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
