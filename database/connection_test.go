package database

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mytheresa/go-feature-showcase/config"
	"github.com/mytheresa/go-feature-showcase/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOpenInMemory(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"}, newTestLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "Store should start empty without seeding")
}

func TestOpenWithSeed(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:", Seed: true}, newTestLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var categories, products, orphans int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Product{}).Where("category_id IS NULL").Count(&orphans).Error)

	assert.Equal(t, int64(3), categories)
	assert.Equal(t, int64(4), products)
	assert.Equal(t, int64(1), orphans)

	// Seeding twice must not duplicate rows
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(3), categories)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Database{Driver: "oracle"}, newTestLogger(io.Discard))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestQueryLogging(t *testing.T) {
	var buf bytes.Buffer

	db, err := Open(context.Background(), config.Database{Driver: config.DriverSQLite, DSN: ":memory:", LogQueries: true}, newTestLogger(&buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	buf.Reset()
	var categories []models.Category
	require.NoError(t, db.Find(&categories).Error)

	assert.Contains(t, buf.String(), "msg=query")
	assert.Contains(t, buf.String(), "categories")
}
