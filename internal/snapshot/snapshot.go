// Package snapshot creates and restores LZ4-compressed copies of the
// gradebook data file, each paired with a JSON metadata sidecar.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pierrec/lz4/v4"
)

const (
	// Extension is the snapshot file extension.
	Extension = ".lz4"

	// metaExtension is appended to the snapshot path for the sidecar.
	metaExtension = ".meta.json"

	dirPerm  = 0o750
	metaPerm = 0o600

	timestampLayout = "20060102-150405"
)

// Metadata describes one snapshot.
type Metadata struct {
	DataFile  string `json:"data_file"`
	CreatedAt string `json:"created_at"`
	RawSize   int64  `json:"raw_size"`
	Records   int    `json:"records"`
}

// Create compresses dataFile into dir and writes the metadata sidecar next
// to it. The record count is caller-supplied metadata, not validated here.
// It returns the snapshot path.
func Create(dataFile, dir string, records int) (string, error) {
	mkErr := os.MkdirAll(dir, dirPerm)
	if mkErr != nil {
		return "", fmt.Errorf("create snapshot dir: %w", mkErr)
	}

	src, err := os.Open(dataFile)
	if err != nil {
		return "", fmt.Errorf("open data file: %w", err)
	}
	defer src.Close()

	info, statErr := src.Stat()
	if statErr != nil {
		return "", fmt.Errorf("stat data file: %w", statErr)
	}

	now := time.Now().UTC()

	base := strings.TrimSuffix(filepath.Base(dataFile), filepath.Ext(dataFile))
	name := fmt.Sprintf("%s-%s%s", base, now.Format(timestampLayout), Extension)
	path := filepath.Join(dir, name)

	compressErr := compressTo(path, src)
	if compressErr != nil {
		return "", compressErr
	}

	meta := Metadata{
		DataFile:  dataFile,
		CreatedAt: now.Format(time.RFC3339),
		RawSize:   info.Size(),
		Records:   records,
	}

	metaErr := writeMetadata(path, meta)
	if metaErr != nil {
		return "", metaErr
	}

	return path, nil
}

func compressTo(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	writer := lz4.NewWriter(dst)

	_, copyErr := io.Copy(writer, src)
	if copyErr != nil {
		writer.Close()
		dst.Close()
		os.Remove(path)

		return fmt.Errorf("compress data file: %w", copyErr)
	}

	flushErr := writer.Close()
	if flushErr != nil {
		dst.Close()
		os.Remove(path)

		return fmt.Errorf("finish compression: %w", flushErr)
	}

	closeErr := dst.Close()
	if closeErr != nil {
		os.Remove(path)

		return fmt.Errorf("close snapshot: %w", closeErr)
	}

	return nil
}

func writeMetadata(snapshotPath string, meta Metadata) error {
	data, marshalErr := json.MarshalIndent(meta, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("marshal snapshot metadata: %w", marshalErr)
	}

	writeErr := os.WriteFile(snapshotPath+metaExtension, data, metaPerm)
	if writeErr != nil {
		return fmt.Errorf("write snapshot metadata: %w", writeErr)
	}

	return nil
}

// ReadMetadata loads the sidecar for a snapshot.
func ReadMetadata(snapshotPath string) (*Metadata, error) {
	data, err := os.ReadFile(snapshotPath + metaExtension)
	if err != nil {
		return nil, fmt.Errorf("read snapshot metadata: %w", err)
	}

	var meta Metadata

	unmarshalErr := json.Unmarshal(data, &meta)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal snapshot metadata: %w", unmarshalErr)
	}

	return &meta, nil
}

// Restore decompresses a snapshot over the given data file path. The content
// is staged in a temp file and renamed into place, so a failed restore never
// truncates the existing data file.
func Restore(snapshotPath, dataFile string) error {
	src, err := os.Open(snapshotPath)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer src.Close()

	dir := filepath.Dir(dataFile)

	tmp, tmpErr := os.CreateTemp(dir, ".gradebook-restore-*.tmp")
	if tmpErr != nil {
		return fmt.Errorf("create temp file: %w", tmpErr)
	}

	_, copyErr := io.Copy(tmp, lz4.NewReader(src))
	if copyErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("decompress snapshot: %w", copyErr)
	}

	closeErr := tmp.Close()
	if closeErr != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close temp file: %w", closeErr)
	}

	renameErr := os.Rename(tmp.Name(), dataFile)
	if renameErr != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replace data file: %w", renameErr)
	}

	return nil
}
