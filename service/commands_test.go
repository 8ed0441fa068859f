package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yelpcamp/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the configuration at a fresh Badger directory.
func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "badger")
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("YELPCAMP_STORE_DRIVER", "badger")
	t.Setenv("YELPCAMP_STORE_BADGER_PATH", dbPath)
	t.Setenv("YELPCAMP_LOG_LEVEL", "disabled")
	return dbPath
}

// captureOutput redirects command output and feeds stdin for the duration of f.
func captureOutput(t *testing.T, stdin string, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	oldOutput, oldInput := output, input
	output, input = &buf, strings.NewReader(stdin)
	defer func() { output, input = oldOutput, oldInput }()

	f()
	return buf.String()
}

func countCampgrounds(t *testing.T, dbPath string) int {
	t.Helper()
	store, err := repositories.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	campgrounds, err := store.Campgrounds.List(context.Background())
	require.NoError(t, err)
	return len(campgrounds)
}

func TestHandleCommand(t *testing.T) {
	setupTestDB(t)

	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: yelpcamp <command> [options]",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: yelpcamp <command> [options]",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
		{
			name:           "restore missing file",
			args:           []string{"restore", "/does/not/exist.db"},
			expectedOutput: "Backup file does not exist: /does/not/exist.db",
			expectedExit:   1,
		},
		{
			name:           "bad flag",
			args:           []string{"seed", "-nope"},
			expectedOutput: "flag provided but not defined: -nope",
			expectedExit:   1,
		},
		{
			name:           "backup without database",
			args:           []string{"backup"},
			expectedOutput: "No database exists to backup",
			expectedExit:   1,
		},
		{
			name:           "clean without database",
			args:           []string{"clean"},
			expectedOutput: "Database is already clean (does not exist)",
			expectedExit:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode int
			out := captureOutput(t, "", func() {
				exitCode = HandleCommand(tt.args)
			})

			assert.Contains(t, out, tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"serve", "seed", "clean", "backup", "restore", "help"} {
		assert.True(t, IsCommand(name), name)
	}
	assert.False(t, IsCommand("vanity"))
}

func TestSeedCommand(t *testing.T) {
	dbPath := setupTestDB(t)

	out := captureOutput(t, "", func() {
		assert.Equal(t, 0, HandleCommand([]string{"seed", "-count", "7", "-seed", "42"}))
	})
	assert.Contains(t, out, "Seeded 7 campgrounds")
	assert.Equal(t, 7, countCampgrounds(t, dbPath))

	// A second run replaces rather than appends.
	captureOutput(t, "", func() {
		assert.Equal(t, 0, HandleCommand([]string{"seed", "-count", "3"}))
	})
	assert.Equal(t, 3, countCampgrounds(t, dbPath))
}

func TestSeedCommandUsesConfiguredCount(t *testing.T) {
	dbPath := setupTestDB(t)
	t.Setenv("YELPCAMP_SEED_COUNT", "4")

	captureOutput(t, "", func() {
		assert.Equal(t, 0, HandleCommand([]string{"seed"}))
	})
	assert.Equal(t, 4, countCampgrounds(t, dbPath))
}

func TestSeedCommandRejectsNegativeCount(t *testing.T) {
	setupTestDB(t)

	out := captureOutput(t, "", func() {
		assert.Equal(t, 1, HandleCommand([]string{"seed", "-count", "-2"}))
	})
	assert.Contains(t, out, "Failed to seed database")
}

func TestCleanCommand(t *testing.T) {
	dbPath := setupTestDB(t)
	captureOutput(t, "", func() {
		require.Equal(t, 0, HandleCommand([]string{"seed", "-count", "2"}))
	})

	t.Run("cancelled", func(t *testing.T) {
		out := captureOutput(t, "n\n", func() {
			assert.Equal(t, 0, HandleCommand([]string{"clean"}))
		})
		assert.Contains(t, out, "Operation cancelled")
		assert.Equal(t, 2, countCampgrounds(t, dbPath))
	})

	t.Run("confirmed", func(t *testing.T) {
		out := captureOutput(t, "y\n", func() {
			assert.Equal(t, 0, HandleCommand([]string{"clean"}))
		})
		assert.Contains(t, out, "Database cleaned successfully")
		assert.Zero(t, countCampgrounds(t, dbPath))
	})
}

func TestBackupAndRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	backupDir := t.TempDir()

	captureOutput(t, "", func() {
		require.Equal(t, 0, HandleCommand([]string{"seed", "-count", "5", "-seed", "1"}))
	})

	out := captureOutput(t, "", func() {
		require.Equal(t, 0, HandleCommand([]string{"backup", "-dir", backupDir}))
	})
	assert.Contains(t, out, "Database backed up successfully to "+backupDir)

	files, err := filepath.Glob(filepath.Join(backupDir, "backup_*.db"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	captureOutput(t, "", func() {
		require.Equal(t, 0, HandleCommand([]string{"seed", "-count", "2"}))
	})

	t.Run("declined", func(t *testing.T) {
		out := captureOutput(t, "n\n", func() {
			assert.Equal(t, 1, HandleCommand([]string{"restore", files[0]}))
		})
		assert.Contains(t, out, "Operation cancelled")
		assert.Equal(t, 2, countCampgrounds(t, dbPath))
	})

	t.Run("replaces existing data", func(t *testing.T) {
		out := captureOutput(t, "", func() {
			assert.Equal(t, 0, HandleCommand([]string{"restore", "-yes", files[0]}))
		})
		assert.Contains(t, out, "Database restored successfully")
		assert.Equal(t, 5, countCampgrounds(t, dbPath))
	})
}

func TestRestoreEmptyFile(t *testing.T) {
	setupTestDB(t)
	empty := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	out := captureOutput(t, "", func() {
		assert.Equal(t, 1, HandleCommand([]string{"restore", empty}))
	})
	assert.Contains(t, out, "Backup file is empty")
}

func TestBackupRequiresBadger(t *testing.T) {
	setupTestDB(t)
	t.Setenv("YELPCAMP_STORE_DRIVER", "mongo")

	out := captureOutput(t, "", func() {
		assert.Equal(t, 1, HandleCommand([]string{"backup"}))
	})
	assert.Contains(t, out, "backup is only supported by the badger driver")
}

func TestInvalidConfiguration(t *testing.T) {
	setupTestDB(t)
	t.Setenv("YELPCAMP_STORE_DRIVER", "postgres")

	out := captureOutput(t, "", func() {
		assert.Equal(t, 1, HandleCommand([]string{"seed"}))
	})
	assert.Contains(t, out, "Error: configuration validation failed")
}
