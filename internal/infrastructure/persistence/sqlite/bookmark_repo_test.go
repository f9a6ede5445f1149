package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/domain/entity"
	"github.com/workbench/navstate/internal/infrastructure/persistence/sqlite"
	"github.com/workbench/navstate/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "navstate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func TestBookmarkRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewBookmarkRepository(openTestDB(t))

	created := time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC)
	b := &entity.Bookmark{
		Name:          "widgets",
		Token:         "Widgets|Explorer[WDock,]$Search",
		PerspectiveID: "Widgets",
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	require.NoError(t, repo.Save(ctx, b))

	got, err := repo.FindByName(ctx, "widgets")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.Token, got.Token)
	assert.Equal(t, "Widgets", got.PerspectiveID)
	assert.True(t, got.CreatedAt.Equal(created))

	missing, err := repo.FindByName(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, "widgets"))
	gone, err := repo.FindByName(ctx, "widgets")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBookmarkRepository_SaveReplacesToken(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewBookmarkRepository(openTestDB(t))

	created := time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.Bookmark{Name: "home", Token: "Old|", CreatedAt: created, UpdatedAt: created}))

	updated := created.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, &entity.Bookmark{Name: "home", Token: "New|s1", CreatedAt: updated, UpdatedAt: updated}))

	got, err := repo.FindByName(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New|s1", got.Token)
	assert.True(t, got.CreatedAt.Equal(created), "created_at is kept on update")
	assert.True(t, got.UpdatedAt.Equal(updated))
}

func TestBookmarkRepository_ListOrderAndLimit(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewBookmarkRepository(openTestDB(t))

	base := time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, &entity.Bookmark{Name: name, Token: name + "|", CreatedAt: ts, UpdatedAt: ts}))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].Name, all[1].Name, all[2].Name})

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestBookmarkRepository_SaveNil(t *testing.T) {
	repo := sqlite.NewBookmarkRepository(openTestDB(t))
	require.Error(t, repo.Save(testCtx(), nil))
}

func TestMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)

	v1, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v1)

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	v2, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}
