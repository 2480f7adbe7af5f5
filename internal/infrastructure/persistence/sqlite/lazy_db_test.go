package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)

	assert.True(t, lazy.IsInitialized())
	assert.Same(t, db1, db2)
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_RetriesAfterFailure(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, os.Remove(blocker))
	_, err = lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_ClosedRejectsUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	_, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NoError(t, lazy.Close())

	assert.False(t, lazy.IsInitialized())
	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_Path(t *testing.T) {
	lazy := sqlite.NewLazyDB("/some/path/to/db.sqlite")
	assert.Equal(t, "/some/path/to/db.sqlite", lazy.Path())
}

func TestLazyRepositories_OpenOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	presets := sqlite.NewLazyPresetRepository(lazy)
	sessions := sqlite.NewLazyLastSessionRepository(lazy)
	settings := sqlite.NewLazySettingsStore(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, presets.Save(ctx, &entity.Preset{ID: "custom-5", LeftURL: "https://a.com", RightURL: "https://b.com"}))
	assert.True(t, lazy.IsInitialized())

	all, err := presets.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	latest, err := sessions.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, settings.Set(ctx, map[string]string{"first_time": "false"}))
	values, err := settings.Get(ctx, "first_time")
	require.NoError(t, err)
	assert.Equal(t, "false", values["first_time"])
}

func TestLazyRepositories_PropagateInitError(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := sqlite.NewLazyPresetRepository(lazy).GetAll(ctx)
	assert.Error(t, err)
	_, err = sqlite.NewLazySettingsStore(lazy).Get(ctx)
	assert.Error(t, err)
}
