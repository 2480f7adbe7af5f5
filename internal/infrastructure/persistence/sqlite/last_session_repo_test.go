package sqlite_test

import (
	"testing"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastSessionRepository_SaveAndGetLatest(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLastSessionRepository(openTestDB(t))

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.LastSession{
		ID: "a", PrimaryURL: "https://a.com", SecondaryURL: "https://b.com",
		Mode: entity.SplitModeFocus, CreatedAt: base,
	}))
	require.NoError(t, repo.Save(ctx, &entity.LastSession{
		ID: "b", PrimaryURL: "https://c.com", SecondaryURL: "https://d.com",
		Mode: entity.SplitModeTopBottom, CreatedAt: base.Add(time.Minute),
	}))

	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "b", latest.ID)
	assert.Equal(t, entity.SplitModeTopBottom, latest.Mode)
	assert.True(t, latest.CreatedAt.Equal(base.Add(time.Minute)))
}

func TestLastSessionRepository_SaveRejectsIncomplete(t *testing.T) {
	repo := sqlite.NewLastSessionRepository(openTestDB(t))

	err := repo.Save(testCtx(), &entity.LastSession{ID: "x", PrimaryURL: "https://a.com"})
	assert.ErrorIs(t, err, entity.ErrInvalidLastSession)
}

func TestLastSessionRepository_DeleteOlderThan(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLastSessionRepository(openTestDB(t))

	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	for i, age := range []time.Duration{time.Hour, 8 * 24 * time.Hour, 30 * 24 * time.Hour} {
		require.NoError(t, repo.Save(ctx, &entity.LastSession{
			ID:           string(rune('a' + i)),
			PrimaryURL:   "https://a.com",
			SecondaryURL: "https://b.com",
			CreatedAt:    now.Add(-age),
		}))
	}

	deleted, err := repo.DeleteOlderThan(ctx, now.Add(-entity.LastSessionMaxAge))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "a", latest.ID)

	require.NoError(t, repo.DeleteAll(ctx))
	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}
