package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store appends formatted entries to a single markdown file. Entries are
// only ever appended; the file is the source of truth.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Append formats the entry and writes it to the notes file, creating the
// file and its directory on first use.
func (s *Store) Append(e Entry) error {
	if strings.TrimSpace(e.Text) == "" && e.Kind != Meeting {
		return fmt.Errorf("notes: refusing to append empty %s entry", e.Kind)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(e.Markdown() + "\n"); err != nil {
		return err
	}
	return nil
}

// ReadAll returns the notes file contents. A file that does not exist yet
// reads as empty.
func (s *Store) ReadAll() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
