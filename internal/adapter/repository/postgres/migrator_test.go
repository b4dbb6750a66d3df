package postgres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesMatchesSuffixCaseInsensitively(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"002_seed.SQL", "001_create_accounts.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- noop"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.sql"), 0o755))

	files, err := migrationFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"001_create_accounts.sql", "002_seed.SQL"}, files)
}

func TestMigrationFilesMissingDir(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
