package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andy/rolodex/internal/book"
)

// Store loads and saves full address book snapshots. An empty path means the
// store's configured default.
type Store interface {
	Save(b *book.AddressBook, path string) error
	Load(path string) (*book.AddressBook, error)
}

// FileStore persists snapshots as gob files on disk.
type FileStore struct {
	// DefaultPath is used when Save or Load is called with an empty path.
	DefaultPath string
}

// NewFileStore creates a file store with the given default snapshot path.
func NewFileStore(defaultPath string) *FileStore {
	return &FileStore{DefaultPath: defaultPath}
}

func (s *FileStore) resolve(path string) string {
	if path == "" {
		return s.DefaultPath
	}
	return path
}

// Save writes the whole book to the given path, creating parent directories
// as needed. The snapshot holds phone numbers, so keep it owner-only.
func (s *FileStore) Save(b *book.AddressBook, path string) error {
	path = s.resolve(path)

	data, err := Encode(b)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from the given path. A missing file is not an error:
// it yields a fresh empty book. Anything else that fails to decode is
// reported as ErrCorrupt by Decode.
func (s *FileStore) Load(path string) (*book.AddressBook, error) {
	path = s.resolve(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return book.New(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return Decode(data)
}
