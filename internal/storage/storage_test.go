package storage_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studypace/internal/model"
	"github.com/manav03panchal/studypace/internal/progress"
	"github.com/manav03panchal/studypace/internal/storage"
)

// setupTestDB creates a new in-memory database for testing.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close(), "failed to close database")
	})
	return db
}

func newMaterial(ownerKey, id string, total, completed int) *model.Material {
	m := model.NewMaterial(ownerKey, id, "Title for "+id, total,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
		model.UnitPages, "")
	m.Completed = completed
	return m
}

// =============================================================================
// Database
// =============================================================================

func TestDB_Open(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		db, err := storage.Open(storage.Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db.Badger())
		require.NoError(t, db.Close())
	})

	t.Run("on disk", func(t *testing.T) {
		db, err := storage.Open(storage.Options{Path: t.TempDir()})
		require.NoError(t, err)
		require.NoError(t, db.Close())
	})
}

func TestDB_DefaultPath(t *testing.T) {
	path := storage.DefaultPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, storage.AppName)
}

// =============================================================================
// MaterialRepo
// =============================================================================

func TestMaterialRepo_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewMaterialRepo(db)

	t.Run("create and get", func(t *testing.T) {
		m := newMaterial("owner-1", "calculus", 320, 0)
		require.NoError(t, repo.Create(m))

		got, err := repo.Get("owner-1", "calculus")
		require.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
		assert.Equal(t, m.Title, got.Title)
		assert.Equal(t, m.TotalCount, got.TotalCount)
		assert.Equal(t, model.UnitPages, got.UnitType)
	})

	t.Run("get missing returns key not found", func(t *testing.T) {
		_, err := repo.Get("owner-1", "nope")
		require.Error(t, err)
		assert.True(t, storage.IsErrKeyNotFound(err))
	})

	t.Run("update persists changes", func(t *testing.T) {
		m := newMaterial("owner-1", "kanji", 2000, 0)
		require.NoError(t, repo.Create(m))

		m.Title = "Kanji deck, revised"
		require.NoError(t, repo.Update(m))

		got, err := repo.Get("owner-1", "kanji")
		require.NoError(t, err)
		assert.Equal(t, "Kanji deck, revised", got.Title)
	})

	t.Run("exists and delete", func(t *testing.T) {
		m := newMaterial("owner-1", "temp", 10, 0)
		require.NoError(t, repo.Create(m))

		exists, err := repo.Exists("owner-1", "temp")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.Delete("owner-1", "temp"))

		exists, err = repo.Exists("owner-1", "temp")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMaterialRepo_List(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewMaterialRepo(db)

	require.NoError(t, repo.Create(newMaterial("owner-1", "bravo", 10, 0)))
	require.NoError(t, repo.Create(newMaterial("owner-1", "alpha", 10, 0)))
	require.NoError(t, repo.Create(newMaterial("owner-2", "other", 10, 0)))

	t.Run("scoped to owner, in key order", func(t *testing.T) {
		ms, err := repo.List("owner-1")
		require.NoError(t, err)
		require.Len(t, ms, 2)
		assert.Equal(t, "alpha", ms[0].ID)
		assert.Equal(t, "bravo", ms[1].ID)
	})

	t.Run("empty for unknown owner", func(t *testing.T) {
		ms, err := repo.List("owner-3")
		require.NoError(t, err)
		assert.Empty(t, ms)
	})
}

func TestMaterialRepo_IncrementCompleted(t *testing.T) {
	t.Run("adds and returns the new value", func(t *testing.T) {
		db := setupTestDB(t)
		repo := storage.NewMaterialRepo(db)
		require.NoError(t, repo.Create(newMaterial("owner-1", "calculus", 100, 40)))

		after, err := repo.IncrementCompleted("owner-1", "calculus", 5)
		require.NoError(t, err)
		assert.Equal(t, 45, after)

		got, err := repo.Get("owner-1", "calculus")
		require.NoError(t, err)
		assert.Equal(t, 45, got.Completed)
	})

	t.Run("negative delta decrements", func(t *testing.T) {
		db := setupTestDB(t)
		repo := storage.NewMaterialRepo(db)
		require.NoError(t, repo.Create(newMaterial("owner-1", "calculus", 100, 40)))

		after, err := repo.IncrementCompleted("owner-1", "calculus", -7)
		require.NoError(t, err)
		assert.Equal(t, 33, after)
	})

	t.Run("missing material fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := storage.NewMaterialRepo(db)
		_, err := repo.IncrementCompleted("owner-1", "ghost", 1)
		require.Error(t, err)
		assert.True(t, storage.IsErrKeyNotFound(err))
	})

	t.Run("concurrent increments lose nothing", func(t *testing.T) {
		db := setupTestDB(t)
		repo := storage.NewMaterialRepo(db)
		require.NoError(t, repo.Create(newMaterial("owner-1", "calculus", 10000, 0)))

		const workers = 8
		const perWorker = 25

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					_, err := repo.IncrementCompleted("owner-1", "calculus", 1)
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		got, err := repo.Get("owner-1", "calculus")
		require.NoError(t, err)
		assert.Equal(t, workers*perWorker, got.Completed)
	})
}

// =============================================================================
// TodoRepo
// =============================================================================

func TestTodoRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewTodoRepo(db)

	t.Run("upsert then get", func(t *testing.T) {
		err := repo.UpsertRange("owner-1", "20250310", "calculus", model.Range{Start: 21, End: 25})
		require.NoError(t, err)

		entry, err := repo.Get("owner-1", "20250310", "calculus")
		require.NoError(t, err)
		require.True(t, entry.Logged())
		assert.Equal(t, 21, *entry.DoneStart)
		assert.Equal(t, 25, *entry.DoneEnd)
		assert.Equal(t, 5, entry.Span())
	})

	t.Run("upsert overwrites the day", func(t *testing.T) {
		err := repo.UpsertRange("owner-1", "20250310", "calculus", model.Range{Start: 21, End: 30})
		require.NoError(t, err)

		entry, err := repo.Get("owner-1", "20250310", "calculus")
		require.NoError(t, err)
		assert.Equal(t, 30, *entry.DoneEnd)
	})

	t.Run("get missing returns key not found", func(t *testing.T) {
		_, err := repo.Get("owner-1", "20250310", "ghost")
		require.Error(t, err)
		assert.True(t, storage.IsErrKeyNotFound(err))
	})

	t.Run("list day keyed by material", func(t *testing.T) {
		require.NoError(t, repo.UpsertRange("owner-1", "20250311", "calculus", model.Range{Start: 31, End: 35}))
		require.NoError(t, repo.UpsertRange("owner-1", "20250311", "kanji", model.Range{Start: 1, End: 20}))
		require.NoError(t, repo.UpsertRange("owner-1", "20250312", "calculus", model.Range{Start: 36, End: 40}))

		entries, err := repo.ListDay("owner-1", "20250311")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Contains(t, entries, "calculus")
		assert.Contains(t, entries, "kanji")
		assert.Equal(t, 20, entries["kanji"].Span())
	})

	t.Run("list day is owner scoped", func(t *testing.T) {
		entries, err := repo.ListDay("owner-2", "20250311")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

// =============================================================================
// ProgressRepo
// =============================================================================

func TestProgressRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewProgressRepo(db)

	t.Run("set then list in day order", func(t *testing.T) {
		// Inserted out of order; key order must come back chronological.
		require.NoError(t, repo.Set("owner-1", "calculus", "20250312", "2025-03-12", 50))
		require.NoError(t, repo.Set("owner-1", "calculus", "20250310", "2025-03-10", 25))
		require.NoError(t, repo.Set("owner-1", "calculus", "20250311", "2025-03-11", 40))

		logs, err := repo.ListByMaterial("owner-1", "calculus")
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, "2025-03-10", logs[0].Date)
		assert.Equal(t, "2025-03-11", logs[1].Date)
		assert.Equal(t, "2025-03-12", logs[2].Date)
		assert.Equal(t, 25, logs[0].Done)
	})

	t.Run("set overwrites the day snapshot", func(t *testing.T) {
		require.NoError(t, repo.Set("owner-1", "calculus", "20250312", "2025-03-12", 55))

		logs, err := repo.ListByMaterial("owner-1", "calculus")
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, 55, logs[2].Done)
	})

	t.Run("scoped per material", func(t *testing.T) {
		require.NoError(t, repo.Set("owner-1", "kanji", "20250310", "2025-03-10", 10))

		logs, err := repo.ListByMaterial("owner-1", "kanji")
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})
}

// =============================================================================
// ConfigRepo
// =============================================================================

func TestConfigRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := storage.NewConfigRepo(db)

	t.Run("creates owner key on first use", func(t *testing.T) {
		cfg, err := repo.Get()
		require.NoError(t, err)
		assert.NotEmpty(t, cfg.OwnerKey)
	})

	t.Run("owner key is stable across reads", func(t *testing.T) {
		first, err := repo.Get()
		require.NoError(t, err)
		second, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, first.OwnerKey, second.OwnerKey)
	})

	t.Run("reset generates a fresh key", func(t *testing.T) {
		before, err := repo.Get()
		require.NoError(t, err)

		after, err := repo.ResetOwner()
		require.NoError(t, err)
		assert.NotEqual(t, before.OwnerKey, after.OwnerKey)

		got, err := repo.Get()
		require.NoError(t, err)
		assert.Equal(t, after.OwnerKey, got.OwnerKey)
	})
}

// =============================================================================
// PaceStore + Reconciler end to end
// =============================================================================

func TestPaceStore_SaveProgressFlow(t *testing.T) {
	db := setupTestDB(t)
	materials := storage.NewMaterialRepo(db)
	todos := storage.NewTodoRepo(db)
	progressLogs := storage.NewProgressRepo(db)

	store := storage.NewPaceStore(todos, materials, progressLogs)
	reconciler := progress.NewReconciler(store)
	reconciler.Now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	}

	require.NoError(t, materials.Create(newMaterial("owner-1", "calculus", 100, 20)))

	t.Run("first save writes all three records", func(t *testing.T) {
		result, err := reconciler.SaveProgress("owner-1", "calculus", 21, 25, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Delta)
		assert.Equal(t, 25, result.DoneAfter)

		m, err := materials.Get("owner-1", "calculus")
		require.NoError(t, err)
		assert.Equal(t, 25, m.Completed)

		entry, err := todos.Get("owner-1", "20250310", "calculus")
		require.NoError(t, err)
		assert.Equal(t, 25, *entry.DoneEnd)

		logs, err := progressLogs.ListByMaterial("owner-1", "calculus")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 25, logs[0].Done)
	})

	t.Run("re-save with stored prev does not double count", func(t *testing.T) {
		entry, err := todos.Get("owner-1", "20250310", "calculus")
		require.NoError(t, err)

		result, err := reconciler.SaveProgress("owner-1", "calculus", 21, 30, entry.LoggedRange())
		require.NoError(t, err)
		assert.Equal(t, 5, result.Delta)
		assert.Equal(t, 30, result.DoneAfter)

		m, err := materials.Get("owner-1", "calculus")
		require.NoError(t, err)
		assert.Equal(t, 30, m.Completed)

		// Still a single log entry for the day, with the updated snapshot.
		logs, err := progressLogs.ListByMaterial("owner-1", "calculus")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 30, logs[0].Done)
	})
}
