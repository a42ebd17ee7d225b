package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-console/internal/warehouse/models"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "stock.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestRepository_ReplaceAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	records := []models.StockRecord{
		{LocationCode: "A014", ItemCode: "Y", ItemName: "WidgetB", Quantity: 3},
		{LocationCode: "A012", ItemCode: "X", ItemName: "WidgetA", Quantity: 5},
		{LocationCode: "A012", ItemCode: "Z", ItemName: "WidgetC", Quantity: 1.5},
	}
	require.NoError(t, repo.ReplaceStock(ctx, "main", records))

	got, err := repo.ListStock(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, records, got, "encounter order preserved")

	require.NoError(t, repo.ReplaceStock(ctx, "main", records[:1]))
	got, err = repo.ListStock(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, records[:1], got)
}

func TestRepository_UnknownWarehouse(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ListStock(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteWarehouse(context.Background(), "nope"), ErrNotFound)
}

func TestRepository_EmptyWarehouse(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.ReplaceStock(ctx, "empty", nil))
	got, err := repo.ListStock(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_ListAndDeleteWarehouses(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.ReplaceStock(ctx, "b", []models.StockRecord{{LocationCode: "A010"}}))
	require.NoError(t, repo.ReplaceStock(ctx, "a", nil))

	ids, err := repo.ListWarehouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, repo.DeleteWarehouse(ctx, "b"))
	ids, err = repo.ListWarehouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)

	_, err = repo.ListStock(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_InitIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Init(context.Background()))
}
