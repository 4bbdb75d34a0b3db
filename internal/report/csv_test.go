package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarthi-tools/gradebook/internal/store"
)

func rankedFixture() []store.RankedRow {
	return []store.RankedRow{
		{Rank: 1, Roll: "C", Name: "CY", Marks: 90, Grade: "S"},
		{Rank: 2, Roll: "A", Name: "ADA", Marks: 70.5, Grade: "B"},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := WriteCSV(&buf, rankedFixture())

	require.NoError(t, err)

	want := "Rank,Roll Number,Name,Marks,Grade\n" +
		"1,C,CY,90,S\n" +
		"2,A,ADA,70.5,B\n"

	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := WriteCSV(&buf, nil)

	require.NoError(t, err)
	assert.Equal(t, "Rank,Roll Number,Name,Marks,Grade\n", buf.String())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "students.csv")

	err := ExportCSV(path, rankedFixture())

	require.NoError(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "1,C,CY,90,S")
}

func TestExportCSV_BadDestination(t *testing.T) {
	t.Parallel()

	err := ExportCSV(filepath.Join(t.TempDir(), "missing", "students.csv"), rankedFixture())

	assert.Error(t, err)
}
