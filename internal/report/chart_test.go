package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarthi-tools/gradebook/internal/store"
)

func TestWritePage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")

	stats := store.Statistics{Count: 2, Max: 90, Min: 70.5, Average: 80.25}

	err := WritePage(path, "Class Report", ThemeDark, rankedFixture(), stats)

	require.NoError(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)

	out := string(data)

	assert.Contains(t, out, "Class Report")
	assert.Contains(t, out, "Performance Overview")
	assert.Contains(t, out, "Marks Trend")
	assert.Contains(t, out, darkPalette.Bar)
}

func TestWritePage_EmptyStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.html")

	err := WritePage(path, "Class Report", ThemeLight, nil, store.Statistics{})

	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestWritePage_BadDestination(t *testing.T) {
	t.Parallel()

	err := WritePage(filepath.Join(t.TempDir(), "missing", "report.html"),
		"Class Report", ThemeDark, rankedFixture(), store.Statistics{})

	assert.Error(t, err)
}

func TestGetPalette(t *testing.T) {
	t.Parallel()

	assert.Equal(t, darkPalette, GetPalette(ThemeDark))
	assert.Equal(t, lightPalette, GetPalette(ThemeLight))
	assert.Equal(t, darkPalette, GetPalette(Theme("sepia")))
}
