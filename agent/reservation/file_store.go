package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// FileStore persists reservations as a single JSON document on disk. Every
// operation reads or rewrites the whole file under a mutex, which is fine at
// this scale and keeps the file format trivially inspectable.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("reservation store path is required")
	}
	return &FileStore{path: trimmed}, nil
}

func (s *FileStore) Add(ctx context.Context, rec contractx.Reservation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return "", err
	}
	records = append(records, rec)
	if err := s.write(records); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *FileStore) Find(ctx context.Context, restaurantID, date, timeSlot string) ([]contractx.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	var matched []contractx.Reservation
	for _, rec := range records {
		if rec.RestaurantID == restaurantID && rec.Date == date && rec.Time == timeSlot {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (s *FileStore) All(ctx context.Context) ([]contractx.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]contractx.Reservation{})
}

// read returns the current table; a missing file is an empty table.
func (s *FileStore) read() ([]contractx.Reservation, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", contractx.ErrStorageUnavailable, s.path, err)
	}

	var records []contractx.Reservation
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", contractx.ErrStorageUnavailable, s.path, err)
	}
	return records, nil
}

func (s *FileStore) write(records []contractx.Reservation) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", contractx.ErrStorageUnavailable, err)
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode reservations: %v", contractx.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrStorageUnavailable, s.path, err)
	}
	return nil
}
