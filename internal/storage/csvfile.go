// Package storage holds the flat-file adapter of the entry storage port,
// backing the variant where entries live in append-only CSV tables instead
// of the hosted SQLite table.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ashdelaney/platewise/internal/models"
)

// CSVStore persists entries in one CSV file per owner, derived from a base
// path. The files themselves carry no owner column; scoping comes from the
// per-owner partitioning, and row ordinals (1-based) stand in for record
// identifiers.
type CSVStore struct {
	basePath string
	mu       sync.Mutex
}

func NewCSVStore(basePath string) *CSVStore {
	return &CSVStore{basePath: basePath}
}

func (store *CSVStore) pathForOwner(userID uint) string {
	extension := filepath.Ext(store.basePath)
	return fmt.Sprintf("%s_u%d%s", strings.TrimSuffix(store.basePath, extension), userID, extension)
}

func (store *CSVStore) Append(entry *models.Entry) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	path := store.pathForOwner(entry.UserID)
	writeHeader := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("stat data file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(models.EntryCSVHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := writer.Write(entry.CSVRecord()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

func (store *CSVStore) ListByOwner(userID uint) ([]models.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.readAll(userID)
}

func (store *CSVStore) DeleteLatest(userID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entries, err := store.readAll(userID)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}
	return true, store.writeAll(userID, entries[:len(entries)-1])
}

func (store *CSVStore) DeleteByID(userID uint, entryID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entries, err := store.readAll(userID)
	if err != nil {
		return false, err
	}
	if entryID == 0 || int(entryID) > len(entries) {
		return false, nil
	}

	remaining := make([]models.Entry, 0, len(entries)-1)
	remaining = append(remaining, entries[:entryID-1]...)
	remaining = append(remaining, entries[entryID:]...)
	return true, store.writeAll(userID, remaining)
}

func (store *CSVStore) DeleteAll(userID uint) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.writeAll(userID, nil)
}

func (store *CSVStore) readAll(userID uint) ([]models.Entry, error) {
	file, err := os.Open(store.pathForOwner(userID))
	if errors.Is(err, os.ErrNotExist) {
		return []models.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); errors.Is(err, io.EOF) {
		return []models.Entry{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	entries := make([]models.Entry, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		entry, err := models.ParseEntryCSVRecord(record)
		if err != nil {
			return nil, err
		}
		entry.ID = uint(len(entries) + 1)
		entry.UserID = userID
		entries = append(entries, entry)
	}
	return entries, nil
}

func (store *CSVStore) writeAll(userID uint, entries []models.Entry) error {
	path := store.pathForOwner(userID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite data file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(models.EntryCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write(entry.CSVRecord()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
