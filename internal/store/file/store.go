package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shrimpsizemoose/trekker/logger"
)

// FileStore keeps each collection as a pretty-printed JSON array in its own
// file under dir, same layout the student records have always used
// (students.json, attendance.json, ...).
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Load(collection string, out interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error.Printf("Error reading collection %s: %v", collection, err)
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if !json.Valid(data) {
		logger.Error.Printf("Collection %s is corrupt, treating as empty", collection)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Error.Printf("Error decoding collection %s: %v", collection, err)
		return nil
	}
	return nil
}

// Save writes the full collection through a temp file and rename, so a
// crashed write never leaves a half-written file behind for the next Load.
func (s *FileStore) Save(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error.Printf("Error encoding collection %s: %v", collection, err)
		return err
	}

	target := s.path(collection)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Error.Printf("Error writing collection %s: %v", collection, err)
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		logger.Error.Printf("Error replacing collection %s: %v", collection, err)
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
