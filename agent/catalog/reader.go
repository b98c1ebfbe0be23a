package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// Reader loads the full restaurant catalog.
type Reader interface {
	Load(ctx context.Context) ([]contractx.Restaurant, error)
}

// FileReader reads the catalog from a JSON file. Every Load re-reads the
// file; nothing is cached across calls. A missing or malformed file is a
// configuration error, not a recoverable per-request condition.
type FileReader struct {
	path string
}

func NewFileReader(path string) (*FileReader, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("catalog path is required")
	}
	return &FileReader{path: trimmed}, nil
}

func (r *FileReader) Load(ctx context.Context) ([]contractx.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", contractx.ErrCatalogUnavailable, r.path, err)
	}

	var restaurants []contractx.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", contractx.ErrCatalogUnavailable, r.path, err)
	}

	return restaurants, nil
}
