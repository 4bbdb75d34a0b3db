package store

import "strings"

// UnknownName is substituted when a stored record carries no usable name.
const UnknownName = "UNKNOWN"

// Record is a single student entry. Name is kept in normalized (uppercase)
// form; Marks is the raw numeric mark.
type Record struct {
	Name  string  `json:"name"`
	Marks float64 `json:"marks"`
}

// Entry pairs a roll number with its record inside a sorted view snapshot.
type Entry struct {
	Roll   string
	Record Record
}

// RankedRow is one row of the ranked export: the single source of truth for
// both the CSV export and the report table.
type RankedRow struct {
	Rank  int
	Roll  string
	Name  string
	Marks float64
	Grade string
}

// Statistics aggregates the stored marks. An empty store yields the zero
// value rather than an error.
type Statistics struct {
	Count   int
	Max     float64
	Min     float64
	Average float64
}

// SortKey selects the ordering of a sorted view.
type SortKey int

// Supported sort keys.
const (
	// ByRoll orders numerically when every roll parses as an integer,
	// lexicographically otherwise.
	ByRoll SortKey = iota
	// ByName orders by name ascending, ties broken by roll.
	ByName
	// ByMarkDescending orders by marks descending, ties broken by roll.
	ByMarkDescending
)

// NormalizeRoll trims surrounding whitespace and uppercases a roll number.
// Every map key in the store is kept in this form.
func NormalizeRoll(roll string) string {
	return strings.ToUpper(strings.TrimSpace(roll))
}

// NormalizeName uppercases a display name.
func NormalizeName(name string) string {
	return strings.ToUpper(name)
}
