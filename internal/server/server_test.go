package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"polyglot/internal/config"
	"polyglot/internal/models"
	"polyglot/internal/seed"
	"polyglot/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededApp(t *testing.T, cfg *config.Config, rdb *redis.Client) *fiber.App {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	_, err := seed.Seed(context.Background(), db, seed.Options{
		NumPosts:   10,
		RandomSeed: 2024,
		Now:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)
	return srv.NewApp()
}

func defaultTestConfig() *config.Config {
	return &config.Config{FeatureFlags: "localized_view=on"}
}

func TestNewServerWithDeps_RequiresDB(t *testing.T) {
	_, err := NewServerWithDeps(defaultTestConfig(), nil, nil)
	assert.Error(t, err)
}

func TestServer_Health(t *testing.T) {
	app := newSeededApp(t, defaultTestConfig(), nil)

	resp, body := doGet(t, app, "/health/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", body["status"])

	resp, body = doGet(t, app, "/health/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"])
	assert.Equal(t, "disabled", checks["redis"])
}

func TestServer_SeededRoutes(t *testing.T) {
	app := newSeededApp(t, defaultTestConfig(), nil)

	t.Run("list posts", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/posts?page=2&per_page=4")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Len(t, body["data"], 4)
		pagination := body["pagination"].(map[string]any)
		assert.EqualValues(t, 10, pagination["total"])
		assert.EqualValues(t, 3, pagination["total_pages"])
		assert.EqualValues(t, 2, pagination["page"])
	})

	t.Run("post meta then content", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/post-meta/1")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		post := body["data"].(map[string]any)
		assert.EqualValues(t, 1, post["id"])

		resp, body = doGet(t, app, "/api/v1/content/"+post["content_reference_id"].(string))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["data"].(map[string]any)["html_body"])

		resp, body = doGet(t, app, "/api/v1/translations/group/"+post["translation_group_id"].(string))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		translations := body["data"].(map[string]any)["translations"].(map[string]any)
		assert.Contains(t, translations, "en")
	})

	t.Run("default language content has no score", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/translations/content/1/en")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "en", data["language"])
		assert.NotContains(t, data, "translation_quality_score")
	})

	t.Run("localized view", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/posts/1/localized/en")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, "en", data["language"])
		available := data["available_translations"].([]any)
		require.NotEmpty(t, available)
		assert.Equal(t, "en", available[0].(map[string]any)["language"])
	})

	t.Run("missing post", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/post-meta/9999")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, models.CodeNotFound, errorCode(body))
		assert.Equal(t, "Post with id 9999 not found", body["error"].(map[string]any)["message"])
	})

	t.Run("invalid language", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/translations/content/1/xx")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, models.CodeInvalidLanguage, errorCode(body))
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		resp, body := doGet(t, app, "/api/v1/nope")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, models.CodeNotFound, errorCode(body))
	})
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	app := newSeededApp(t, defaultTestConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "req-abc-123", resp.Header.Get(fiber.HeaderXRequestID))
	assert.Contains(t, readBody(t, resp.Body), `"request_id":"req-abc-123"`)
}

func TestServer_WritesAreRejected(t *testing.T) {
	app := newSeededApp(t, defaultTestConfig(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/posts", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, models.CodeMethodNotAllowed, decodeError(t, resp.Body).Error.Code)

	resp, err = app.Test(httptest.NewRequest(http.MethodOptions, "/api/v1/posts", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestServer_FeatureFlags(t *testing.T) {
	app := newSeededApp(t, &config.Config{FeatureFlags: "localized_view=40%,beta=off"}, nil)

	resp, body := doGet(t, app, "/api/v1/feature-flags")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, map[string]any{"localized_view": "40%", "beta": "off"}, data["raw"])
	assert.Equal(t, map[string]any{"localized_view": float64(40), "beta": float64(0)}, data["rollout"])
}

func TestServer_OpenAPIDocument(t *testing.T) {
	app := newSeededApp(t, defaultTestConfig(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp.Body)
	assert.Contains(t, body, "Polyglot Blog API")
	assert.Contains(t, body, "/posts/{id}/localized/{language}")
}

func TestServer_RateLimitWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := defaultTestConfig()
	cfg.RateLimitPerMinute = 2
	app := newSeededApp(t, cfg, rdb)

	for i := 0; i < 2; i++ {
		resp, _ := doGet(t, app, "/api/v1/languages")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doGet(t, app, "/api/v1/languages")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, models.CodeRateLimited, errorCode(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))

	// Health probes sit outside the limited group.
	resp, _ = doGet(t, app, "/health/live")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doGet(t, app, "/health/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["checks"].(map[string]any)["redis"])
}

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}
