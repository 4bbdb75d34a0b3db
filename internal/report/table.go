package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/yarthi-tools/gradebook/internal/grade"
	"github.com/yarthi-tools/gradebook/internal/store"
)

// msgNoStudents is printed instead of an empty table.
const msgNoStudents = "No students recorded"

// formatMarks renders a mark without trailing zero noise.
func formatMarks(marks float64) string {
	return strconv.FormatFloat(marks, 'f', -1, 64)
}

func newTableWriter(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	return tbl
}

// RenderEntries writes a sorted view as a terminal table with grade letters.
// maxRows caps the rendered rows; 0 means unlimited.
func RenderEntries(w io.Writer, entries []store.Entry, maxRows int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, msgNoStudents)

		return
	}

	total := len(entries)

	if maxRows > 0 && len(entries) > maxRows {
		entries = entries[:maxRows]
	}

	tbl := newTableWriter(w)
	tbl.AppendHeader(table.Row{"Roll", "Name", "Marks", "Grade"})

	for _, entry := range entries {
		tbl.AppendRow(table.Row{
			entry.Roll,
			entry.Record.Name,
			formatMarks(entry.Record.Marks),
			grade.Letter(entry.Record.Marks),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d students", total)})
	tbl.Render()
}

// RenderRanked writes the ranked export as a terminal table.
func RenderRanked(w io.Writer, rows []store.RankedRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, msgNoStudents)

		return
	}

	tbl := newTableWriter(w)
	tbl.AppendHeader(table.Row{"Rank", "Roll Number", "Name", "Marks", "Grade"})

	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Rank,
			row.Roll,
			row.Name,
			formatMarks(row.Marks),
			row.Grade,
		})
	}

	tbl.Render()
}

// RenderStatistics writes the aggregate statistics block.
func RenderStatistics(w io.Writer, stats store.Statistics) {
	tbl := newTableWriter(w)
	tbl.AppendRows([]table.Row{
		{"Total Students", stats.Count},
		{"Highest Score", formatMarks(stats.Max)},
		{"Lowest Score", formatMarks(stats.Min)},
		{"Class Average", fmt.Sprintf("%.2f", stats.Average)},
	})
	tbl.Render()
}
