package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/helgeesch/captain-arro/pkg/errors"
)

// FileStore keeps saved arrows as JSON files in a directory. It backs the
// CLI and single-instance servers where MongoDB would be overkill.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store. If baseDir is empty, defaults
// to ~/.config/captain-arro/arrows/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "captain-arro", "arrows")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "create store dir %s", baseDir)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Put inserts or updates a record. A missing ID gets a fresh UUID.
func (s *FileStore) Put(ctx context.Context, rec *Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	} else if err := errors.ValidateName(rec.ID); err != nil {
		// Ids become filenames too, so they follow the name rules.
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.ID), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "write record %s", rec.ID)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	// An id that breaks the filename rules cannot name a stored record.
	if err := errors.ValidateName(id); err != nil {
		return nil, errors.New(errors.ErrCodeArrowNotFound, "arrow %q not found", id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeArrowNotFound, "arrow %q not found", id)
		}
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read record %s", id)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", id, err)
	}
	return &rec, nil
}

func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read store dir %s", s.baseDir)
	}

	var records []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return strings.Compare(records[i].ID, records[j].ID) < 0
	})
	return records, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateName(id); err != nil {
		return errors.New(errors.ErrCodeArrowNotFound, "arrow %q not found", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeArrowNotFound, "arrow %q not found", id)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "remove record %s", id)
	}
	return nil
}

func (s *FileStore) Close(ctx context.Context) error { return nil }

// Path returns the base directory for record files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
