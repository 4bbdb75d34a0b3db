// Package report renders store query results as CSV exports, terminal
// tables, and HTML chart pages. It holds no state of its own; every renderer
// consumes a snapshot produced by the store.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yarthi-tools/gradebook/internal/store"
)

// csvHeader is the fixed column order of the ranked export.
var csvHeader = []string{"Rank", "Roll Number", "Name", "Marks", "Grade"}

// WriteCSV writes the ranked rows to w: one header row, one row per record.
func WriteCSV(w io.Writer, rows []store.RankedRow) error {
	writer := csv.NewWriter(w)

	headerErr := writer.Write(csvHeader)
	if headerErr != nil {
		return fmt.Errorf("write csv header: %w", headerErr)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Rank),
			row.Roll,
			row.Name,
			strconv.FormatFloat(row.Marks, 'f', -1, 64),
			row.Grade,
		}

		rowErr := writer.Write(record)
		if rowErr != nil {
			return fmt.Errorf("write csv row %d: %w", row.Rank, rowErr)
		}
	}

	writer.Flush()

	flushErr := writer.Error()
	if flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	return nil
}

// ExportCSV writes the ranked rows to the given file path. Failures are
// returned to the caller as a result, never treated as fatal.
func ExportCSV(path string, rows []store.RankedRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	writeErr := WriteCSV(file, rows)

	closeErr := file.Close()

	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("close csv file: %w", closeErr)
	}

	return nil
}
