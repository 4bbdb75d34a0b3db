package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Indentation for the canonical on-disk form.
const fileIndent = "    "

// tempPattern is the name pattern for the staging file used by saveRecords.
const tempPattern = ".gradebook-*.tmp"

// loadRaw reads the backing file into per-roll raw JSON values. The value
// shapes are reconciled later; this step only requires the top level to be
// an object keyed by roll.
func loadRaw(path string) (map[string]json.RawMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	var raw map[string]json.RawMessage

	decodeErr := json.NewDecoder(file).Decode(&raw)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode data file: %w", decodeErr)
	}

	return raw, nil
}

// saveRecords writes the canonical record map to path. The content is staged
// in a temp file in the same directory and renamed over the target, so the
// backing file is never observed half-written.
func saveRecords(path string, records map[string]Record) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", fileIndent)

	encodeErr := encoder.Encode(records)
	if encodeErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("encode records: %w", encodeErr)
	}

	closeErr := tmp.Close()
	if closeErr != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close temp file: %w", closeErr)
	}

	renameErr := os.Rename(tmp.Name(), path)
	if renameErr != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replace data file: %w", renameErr)
	}

	return nil
}
