package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/harrylevesque/qrverify/internal/models"
)

// ErrUnsupportedFormat is returned for dataset files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// CatalogStore reads and writes a code dataset file. The format follows the
// file extension: .yaml/.yml or .json.
type CatalogStore struct {
	filePath string
	mu       sync.RWMutex
}

// NewCatalogStore creates a store for the dataset at path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{filePath: path}
}

// Path returns the dataset file path.
func (s *CatalogStore) Path() string { return s.filePath }

// Load reads and decodes the dataset file.
func (s *CatalogStore) Load() (models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ds models.Dataset
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return ds, err
	}
	switch ext(s.filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ds)
	case ".json":
		err = json.Unmarshal(data, &ds)
	default:
		return ds, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.filePath)
	}
	if err != nil {
		return ds, fmt.Errorf("decode %s: %w", s.filePath, err)
	}
	return ds, nil
}

// Save encodes ds and writes it atomically (temp file + rename).
func (s *CatalogStore) Save(ds models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		data []byte
		err  error
	)
	switch ext(s.filePath) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(ds)
	case ".json":
		data, err = json.MarshalIndent(ds, "", "  ")
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.filePath)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
