package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"polyglot/internal/config"
	"polyglot/internal/database"
	"polyglot/internal/models"
	"polyglot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(&config.Config{AutoMigrate: true, SeedOnStart: true, SeedPosts: 30})
	assert.Equal(t, Options{Migrate: true, SeedIfEmpty: true, SeedPosts: 30}, opts)
}

func TestPrepare_SeedsOnlyEmptyStore(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	opts := Options{Migrate: true, SeedIfEmpty: true, SeedPosts: 5}

	require.NoError(t, Prepare(ctx, db, opts))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)

	require.NoError(t, Prepare(ctx, db, opts))
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestInitRuntime_SQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "blog.db"),
	}

	db, rdb, err := InitRuntime(cfg, Options{Migrate: true, SeedIfEmpty: true, SeedPosts: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.Nil(t, rdb)

	status, err := database.SchemaStatus(context.Background(), db)
	require.NoError(t, err)
	for _, table := range status {
		assert.True(t, table.Exists, table.Table)
	}
}
