package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is a JSON file-backed recipe catalog. The file holds a single JSON
// array of recipes; a missing or unreadable file reads as an empty catalog,
// matching how downstream scoring treats a catalog it cannot use.
type Store struct {
	path string
}

// NewStore creates a Store and ensures the parent directory exists.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Load reads the full catalog. A missing file yields an empty slice and no
// error; a corrupt file yields an empty slice and the parse error so callers
// can decide whether to surface it.
func (s *Store) Load(ctx context.Context) ([]Recipe, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return recipes, nil
}

// Add appends recipes to the catalog, assigning IDs to any that lack one.
func (s *Store) Add(ctx context.Context, recipes ...Recipe) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}

	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = uuid.NewString()
		}
	}
	existing = append(existing, recipes...)

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}
