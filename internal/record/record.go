// Package record writes exam sheets as JSON files.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okutan/tusnet/internal/exam"
)

// FileName returns the record file name for a session identifier.
func FileName(createdAt string) string {
	return fmt.Sprintf("quiz_%s.json", createdAt)
}

// Save writes the record to dir, keyed by its created_at. The write is
// atomic: a temp file in the same directory is renamed into place.
func Save(dir string, rec exam.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create records dir: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	path := filepath.Join(dir, FileName(rec.CreatedAt))
	tmpFile, err := os.CreateTemp(dir, "record-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp record: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close record: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}
	return path, nil
}

// Load reads a record file back. Used by tests and external tooling.
func Load(path string) (exam.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return exam.Record{}, fmt.Errorf("failed to read record: %w", err)
	}
	var rec exam.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return exam.Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}
