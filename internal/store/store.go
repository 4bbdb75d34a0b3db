// Package store owns the student record set: a roll-keyed map loaded from a
// JSON data file, repaired on load, and re-persisted synchronously after
// every mutation. All queries are recomputed on demand from the live map.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yarthi-tools/gradebook/internal/grade"
)

// ErrInvalidMark is returned by Upsert when the mark does not convert to a
// number. The store is left unmodified.
var ErrInvalidMark = errors.New("marks must be a number")

// Store maps normalized roll numbers to records and keeps the backing file
// synchronized with memory. It is single-writer and holds no file handle
// between calls.
type Store struct {
	path    string
	records map[string]Record
}

// Open constructs the store from the backing file path. Open never fails:
// a missing or unreadable file yields an empty store, and a readable file
// is reconciled to canonical form and rewritten in place.
func Open(path string) *Store {
	s := &Store{
		path:    path,
		records: make(map[string]Record),
	}

	s.load()

	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get looks up a record by roll number.
func (s *Store) Get(roll string) (Record, bool) {
	rec, ok := s.records[NormalizeRoll(roll)]

	return rec, ok
}

// load reconstructs the map from disk. Load-time failures are absorbed, not
// surfaced: the constructor must always end with a usable store.
func (s *Store) load() {
	raw, err := loadRaw(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("discarding unreadable data file", "path", s.path, "error", err)
		}

		return
	}

	s.records = reconcile(raw)

	// Rewrite the repaired map in canonical form immediately, so a
	// corrupted-but-readable file is healed on first load.
	s.persist()
}

// reconcile normalizes raw per-roll values into canonical records. It is a
// pure function; persistence of the repaired map is a separate step.
func reconcile(raw map[string]json.RawMessage) map[string]Record {
	clean := make(map[string]Record, len(raw))

	for roll, value := range raw {
		clean[NormalizeRoll(roll)] = reconcileValue(value)
	}

	return clean
}

// reconcileValue accepts the two stored shapes: the canonical {name, marks}
// object and the legacy bare scalar standing in for the mark. Anything else
// degrades to the legacy rule and ends up as an unnamed zero-mark record.
func reconcileValue(value json.RawMessage) Record {
	var obj map[string]json.RawMessage

	objErr := json.Unmarshal(value, &obj)
	if objErr != nil {
		return Record{Name: UnknownName, Marks: coerceMarks(value)}
	}

	rec := Record{Name: UnknownName}

	// A null name decodes to the empty string without error; treat it the
	// same as an absent name.
	nameRaw, ok := obj["name"]
	if ok {
		if name := NormalizeName(coerceString(nameRaw)); name != "" {
			rec.Name = name
		}
	}

	marksRaw, ok := obj["marks"]
	if ok {
		rec.Marks = coerceMarks(marksRaw)
	}

	return rec
}

// coerceMarks interprets a raw JSON value as a mark: numbers directly,
// numeric strings by parsing, everything else as 0.
func coerceMarks(value json.RawMessage) float64 {
	var num float64

	numErr := json.Unmarshal(value, &num)
	if numErr == nil {
		return num
	}

	var str string

	strErr := json.Unmarshal(value, &str)
	if strErr == nil {
		parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if parseErr == nil {
			return parsed
		}
	}

	return 0
}

// coerceString renders a raw JSON value as a string: JSON strings decode,
// any other scalar keeps its literal text.
func coerceString(value json.RawMessage) string {
	var str string

	err := json.Unmarshal(value, &str)
	if err == nil {
		return str
	}

	return strings.TrimSpace(string(value))
}

// persist writes the in-memory map out. A failed write is reported but does
// not roll back memory; the next successful mutation rewrites the full state.
func (s *Store) persist() {
	err := saveRecords(s.path, s.records)
	if err != nil {
		slog.Error("save data file", "path", s.path, "error", err)
	}
}

// Upsert inserts or replaces the record keyed by the normalized roll and
// persists synchronously. The mark must convert to a number; emptiness and
// range checks on roll and name are the caller's concern.
func (s *Store) Upsert(roll, name, marks string) error {
	val, err := strconv.ParseFloat(strings.TrimSpace(marks), 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMark, marks)
	}

	s.records[NormalizeRoll(roll)] = Record{
		Name:  NormalizeName(name),
		Marks: val,
	}

	s.persist()

	return nil
}

// Remove deletes the record for a roll if present and persists. Removing an
// absent roll is a silent no-op.
func (s *Store) Remove(roll string) {
	key := NormalizeRoll(roll)

	_, ok := s.records[key]
	if !ok {
		return
	}

	delete(s.records, key)
	s.persist()
}

// SortedView returns a snapshot of every record in the order selected by
// key. The view is recomputed on every call and never cached.
func (s *Store) SortedView(key SortKey) []Entry {
	entries := make([]Entry, 0, len(s.records))

	for roll, rec := range s.records {
		entries = append(entries, Entry{Roll: roll, Record: rec})
	}

	switch key {
	case ByName:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Record.Name != entries[j].Record.Name {
				return entries[i].Record.Name < entries[j].Record.Name
			}

			return entries[i].Roll < entries[j].Roll
		})
	case ByMarkDescending:
		sortByMarksDescending(entries)
	case ByRoll:
		sortByRoll(entries)
	default:
		sortByRoll(entries)
	}

	return entries
}

// sortByRoll orders numerically only when every roll parses as an integer.
// One non-numeric roll switches the whole view to lexicographic order;
// partial numeric ordering is deliberately not attempted.
func sortByRoll(entries []Entry) {
	numeric := make(map[string]int, len(entries))
	allNumeric := true

	for _, entry := range entries {
		n, err := strconv.Atoi(entry.Roll)
		if err != nil {
			allNumeric = false

			break
		}

		numeric[entry.Roll] = n
	}

	if allNumeric {
		sort.Slice(entries, func(i, j int) bool {
			return numeric[entries[i].Roll] < numeric[entries[j].Roll]
		})

		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Roll < entries[j].Roll
	})
}

func sortByMarksDescending(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Record.Marks != entries[j].Record.Marks {
			return entries[i].Record.Marks > entries[j].Record.Marks
		}

		return entries[i].Roll < entries[j].Roll
	})
}

// Search returns the set of rolls whose roll or name contains the query,
// case-insensitively. An empty query matches every roll. Callers intersect
// the set with a sorted view to get filtered, ordered results.
func (s *Store) Search(query string) map[string]bool {
	hits := make(map[string]bool, len(s.records))

	q := strings.ToLower(query)
	if q == "" {
		for roll := range s.records {
			hits[roll] = true
		}

		return hits
	}

	for roll, rec := range s.records {
		if strings.Contains(strings.ToLower(roll), q) ||
			strings.Contains(strings.ToLower(rec.Name), q) {
			hits[roll] = true
		}
	}

	return hits
}

// Statistics aggregates the stored marks. An empty store reports all zeros;
// "no data" is a sentinel, not an error.
func (s *Store) Statistics() Statistics {
	if len(s.records) == 0 {
		return Statistics{}
	}

	stats := Statistics{Count: len(s.records)}
	first := true
	sum := 0.0

	for _, rec := range s.records {
		if first {
			stats.Max = rec.Marks
			stats.Min = rec.Marks
			first = false
		}

		if rec.Marks > stats.Max {
			stats.Max = rec.Marks
		}

		if rec.Marks < stats.Min {
			stats.Min = rec.Marks
		}

		sum += rec.Marks
	}

	stats.Average = sum / float64(stats.Count)

	return stats
}

// ExportRanked returns every record ordered descending by marks with a
// 1-based rank and its grade letter. Ties share the marks ordering and are
// broken by roll ascending, so repeated calls are deterministic. Both the
// CSV export and the report table consume this one sequence.
func (s *Store) ExportRanked() []RankedRow {
	entries := s.SortedView(ByMarkDescending)
	rows := make([]RankedRow, len(entries))

	for i, entry := range entries {
		rows[i] = RankedRow{
			Rank:  i + 1,
			Roll:  entry.Roll,
			Name:  entry.Record.Name,
			Marks: entry.Record.Marks,
			Grade: grade.Letter(entry.Record.Marks),
		}
	}

	return rows
}
