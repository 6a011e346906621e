package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// defaultStatePath is used when the file driver is selected without an
// explicit state path.
const defaultStatePath = "clientdesk_state.json"

// filePersistence stores the portal state blob as a single JSON file on the
// local filesystem. It is the default backend.
type filePersistence struct {
	path string
	mu   sync.Mutex
}

// NewFilePersistence constructs a file-backed [Persistence] writing to path.
// An empty path falls back to a state file in the working directory.
func NewFilePersistence(path string) Persistence {
	if path == "" {
		path = defaultStatePath
	}
	return &filePersistence{path: path}
}

func (f *filePersistence) Load(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	return data, nil
}

func (f *filePersistence) Save(ctx context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
