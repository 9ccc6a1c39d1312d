package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/RoleplayBot_Go/internal/utils"
)

// JSONFile stores each namespace as <dir>/<namespace>.json holding an
// object keyed by guild id.
type JSONFile struct {
	mu  sync.Mutex
	dir string
}

// NewJSONFile creates the data directory if needed.
func NewJSONFile(dir string) (*JSONFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &JSONFile{dir: dir}, nil
}

// Path returns the file backing a namespace.
func (j *JSONFile) Path(namespace string) string {
	return filepath.Join(j.dir, namespace+".json")
}

// Load reads the namespace file. A missing file is an empty namespace.
func (j *JSONFile) Load(_ context.Context, namespace string) (map[string]json.RawMessage, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	docs := map[string]json.RawMessage{}
	err := utils.LoadJSON(j.Path(namespace), &docs)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Save rewrites the namespace file atomically.
func (j *JSONFile) Save(_ context.Context, namespace string, docs map[string]json.RawMessage) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return utils.SaveJSON(j.Path(namespace), docs)
}
