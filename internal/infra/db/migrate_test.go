//go:build unit

package db_test

import (
	"testing"

	"ariga.io/atlas/sql/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../../migrations"

func TestMigrationsDir(t *testing.T) {
	dir, err := migrate.NewLocalDir(migrationsDir)
	require.NoError(t, err)

	t.Run("atlas.sum matches the migration files", func(t *testing.T) {
		assert.NoError(t, migrate.Validate(dir))
	})

	t.Run("contains the initial schema", func(t *testing.T) {
		files, err := dir.Files()
		require.NoError(t, err)
		require.NotEmpty(t, files)
		assert.Equal(t, "001_initial_schema.sql", files[0].Name())
		assert.Equal(t, "001", files[0].Version())
	})
}
