// Package jsonstore implements the JSON file backend for the lost-and-found
// registry. This file provides collection read/write helpers with atomic
// persistence.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection file names inside the data directory.
const (
	usersFile  = "users.json"
	itemsFile  = "items.json"
	claimsFile = "claims.json"
)

// jsonIndent is the indentation used for persisted collections. The files
// are meant to be hand-inspectable.
const jsonIndent = "    "

// readRecords reads a collection file and unmarshals it into a slice of T.
// A missing file or unparseable content yields an empty collection rather
// than an error: corrupted storage is treated as "no data". Any other I/O
// failure (e.g. permission denied) is surfaced to the caller.
func readRecords[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		// Unparseable content is treated as an empty collection. This is
		// lossy: the next save overwrites whatever was in the file.
		return nil, nil
	}
	return records, nil
}

// writeRecords atomically overwrites a collection file using the temp-file,
// fsync, rename pattern. An empty collection is written as [] rather than
// null so the file stays a valid JSON array.
func writeRecords[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".registry-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
