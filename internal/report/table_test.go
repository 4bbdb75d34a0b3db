package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yarthi-tools/gradebook/internal/store"
)

func entriesFixture() []store.Entry {
	return []store.Entry{
		{Roll: "2", Record: store.Record{Name: "ADA", Marks: 91}},
		{Roll: "9", Record: store.Record{Name: "BOB", Marks: 47.5}},
	}
}

func TestRenderEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	RenderEntries(&buf, entriesFixture(), 0)

	out := buf.String()

	assert.Contains(t, out, "ADA")
	assert.Contains(t, out, "91")
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "47.5")
	assert.Contains(t, out, "Total: 2 students")
}

func TestRenderEntries_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	RenderEntries(&buf, nil, 0)

	assert.Contains(t, buf.String(), msgNoStudents)
}

func TestRenderEntries_MaxRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	RenderEntries(&buf, entriesFixture(), 1)

	out := buf.String()

	assert.Contains(t, out, "ADA")
	assert.NotContains(t, out, "BOB")

	// The footer always reports the uncapped total.
	assert.Contains(t, out, "Total: 2 students")
}

func TestRenderRanked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	RenderRanked(&buf, rankedFixture())

	out := buf.String()

	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Roll Number")
	assert.Contains(t, out, "CY")
	assert.Contains(t, out, "ADA")
}

func TestRenderStatistics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	RenderStatistics(&buf, store.Statistics{Count: 3, Max: 90, Min: 50, Average: 70})

	out := buf.String()

	assert.Contains(t, out, "Total Students")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "70.00")
}
