package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "nested", "slotbook.sqlite"))
	require.NoError(t, err)
	defer database.Close()

	status, err := GetMigrationStatus(database)
	require.NoError(t, err)
	assert.Equal(t, uint(0), status.CurrentVersion)
	assert.Equal(t, uint(1), status.LatestVersion)
	assert.True(t, status.Pending)

	require.NoError(t, RunMigrations(database))
	// Second run is a no-op
	require.NoError(t, RunMigrations(database))

	status, err = GetMigrationStatus(database)
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.CurrentVersion)
	assert.False(t, status.Pending)
	assert.False(t, status.Dirty)

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&n))
	assert.Zero(t, n)
}

func TestNilDatabase(t *testing.T) {
	assert.Error(t, RunMigrations(nil))
	_, err := GetMigrationStatus(nil)
	assert.Error(t, err)
}
