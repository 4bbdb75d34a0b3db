package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarthi-tools/gradebook/internal/store"
)

// writeTestConfig writes a config pointing at a temp data file and returns
// the config path and the data file path.
func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "students.json")
	configPath := filepath.Join(dir, "gradebook.yaml")

	content := fmt.Sprintf("data_file: %s\nbackup:\n  dir: %s\n",
		dataFile, filepath.Join(dir, "backups"))

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath, dataFile
}

func TestRunAdd_Validation(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t)

	assert.ErrorIs(t, runAdd(configPath, "  ", "ada", "85"), ErrEmptyRoll)
	assert.ErrorIs(t, runAdd(configPath, "7", "  ", "85"), ErrEmptyName)
	assert.ErrorIs(t, runAdd(configPath, "7", "ada", "eleven"), ErrMarksOutOfRange)
	assert.ErrorIs(t, runAdd(configPath, "7", "ada", "101"), ErrMarksOutOfRange)
	assert.ErrorIs(t, runAdd(configPath, "7", "ada", "-1"), ErrMarksOutOfRange)
}

func TestRunAdd_PersistsRecord(t *testing.T) {
	t.Parallel()

	configPath, dataFile := writeTestConfig(t)

	require.NoError(t, runAdd(configPath, " ab-2 ", "zed", "61"))

	st := store.Open(dataFile)

	rec, ok := st.Get("AB-2")
	require.True(t, ok)
	assert.Equal(t, "ZED", rec.Name)
	assert.InDelta(t, 61.0, rec.Marks, 0)
}

func TestRunRemove_AbsentIsSuccess(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t)

	assert.NoError(t, runRemove(configPath, "404"))
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	key, err := parseSortKey("roll")
	require.NoError(t, err)
	assert.Equal(t, store.ByRoll, key)

	key, err = parseSortKey("Name")
	require.NoError(t, err)
	assert.Equal(t, store.ByName, key)

	key, err = parseSortKey("marks")
	require.NoError(t, err)
	assert.Equal(t, store.ByMarkDescending, key)

	_, err = parseSortKey("height")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestRunExport_WritesCSV(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t)

	require.NoError(t, runAdd(configPath, "7", "ada", "85"))
	require.NoError(t, runAdd(configPath, "9", "bob", "92"))

	output := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, runExport(configPath, output))

	data, readErr := os.ReadFile(output)
	require.NoError(t, readErr)

	out := string(data)

	assert.Contains(t, out, "Rank,Roll Number,Name,Marks,Grade")
	assert.Contains(t, out, "1,9,BOB,92,S")
	assert.Contains(t, out, "2,7,ADA,85,A")
}

func TestRunBackupRestore_RoundTrip(t *testing.T) {
	t.Parallel()

	configPath, dataFile := writeTestConfig(t)

	require.NoError(t, runAdd(configPath, "7", "ada", "85"))

	before, readErr := os.ReadFile(dataFile)
	require.NoError(t, readErr)

	backupDir := t.TempDir()

	require.NoError(t, runBackup(configPath, backupDir))

	entries, globErr := filepath.Glob(filepath.Join(backupDir, "*.lz4"))
	require.NoError(t, globErr)
	require.Len(t, entries, 1)

	// Mutate, then restore the snapshot.
	require.NoError(t, runAdd(configPath, "9", "bob", "92"))
	require.NoError(t, runRestore(configPath, entries[0]))

	after, afterErr := os.ReadFile(dataFile)
	require.NoError(t, afterErr)
	assert.Equal(t, before, after)
}

func TestRunReport_WritesHTML(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t)

	require.NoError(t, runAdd(configPath, "7", "ada", "85"))

	output := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, runReport(configPath, output, "light"))

	data, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Performance Overview")
}

func TestRunReport_InvalidTheme(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t)

	err := runReport(configPath, filepath.Join(t.TempDir(), "r.html"), "sepia")

	assert.Error(t, err)
}
