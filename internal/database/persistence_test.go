package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// Tasks written through one connection must be visible after close and reopen
func TestTaskPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.Database{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "nested", "tasks.db"),
	}

	db, err := InitDB(ctx, cfg)
	require.NoError(t, err)

	a, b := newTestTask(1, "Buy milk"), newTestTask(2, "Walk dog")
	repo := NewTaskRepo(db)
	require.NoError(t, repo.Commit(ctx, ChangeSet{Inserts: []*models.Task{a, b}}))
	require.NoError(t, db.Close())

	// Reopen runs migrations again; they must be idempotent
	db, err = InitDB(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	tasks, err := NewTaskRepo(db).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, []string{"Buy milk", "Walk dog"}, titles(tasks))
	assert.False(t, tasks[0].CreatedAt.IsZero())
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	_, err := InitDB(context.Background(), config.Database{Driver: "postgres"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestInitDB_EmptyPaths(t *testing.T) {
	_, err := InitDB(context.Background(), config.Database{Driver: DriverSQLite})
	assert.Error(t, err)

	_, err = InitDB(context.Background(), config.Database{Driver: DriverMySQL})
	assert.Error(t, err)
}

func TestInitDB_InMemory(t *testing.T) {
	db, err := InitDB(context.Background(), config.Database{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	tasks, err := NewTaskRepo(db).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
