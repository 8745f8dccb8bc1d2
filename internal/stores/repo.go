// Package stores manages saved lists on disk.
//
// A saved list is a plain-text file in the lists directory named after the
// user-supplied base name plus a fixed extension ("groceries" is stored as
// lists/groceries.txt). File contents use the listfile line format.
//
// Key components:
//   - ListRepo: Interface for managing saved lists (list, load, save, delete)
//   - FileListRepo: ListRepo backed by fsops.FS
package stores

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/listmaker/internal/fsops"
	"github.com/danieljhkim/listmaker/internal/listfile"
)

// ErrNotFound indicates a saved list does not exist.
var ErrNotFound = errors.New("list not found")

// ListRepo provides an interface for managing saved lists.
type ListRepo interface {
	// List returns the base names of all saved lists, sorted.
	List() ([]string, error)

	// Exists checks if a list with the given base name exists.
	Exists(name string) (bool, error)

	// Load reads the items of a saved list.
	Load(name string) ([]string, error)

	// Save writes items to a list, replacing any existing file.
	Save(name string, items []string) error

	// Delete removes a saved list.
	Delete(name string) error

	// FileName returns the file name for a base name.
	FileName(name string) string

	// BaseName returns the base name for a file name.
	BaseName(fileName string) string

	// Path returns the full path of the file for a base name.
	Path(name string) string
}

// FileListRepo implements ListRepo using files on disk.
type FileListRepo struct {
	fs        fsops.FS
	listsDir  string
	extension string
}

// NewFileListRepo creates a new FileListRepo.
func NewFileListRepo(fs fsops.FS, listsDir, extension string) *FileListRepo {
	return &FileListRepo{
		fs:        fs,
		listsDir:  listsDir,
		extension: extension,
	}
}

// Dir returns the lists directory.
func (r *FileListRepo) Dir() string {
	return r.listsDir
}

// FileName returns the file name for a base name.
func (r *FileListRepo) FileName(name string) string {
	return name + r.extension
}

// BaseName returns the base name for a file name.
func (r *FileListRepo) BaseName(fileName string) string {
	return strings.TrimSuffix(fileName, r.extension)
}

// Path returns the full path of the file for a base name.
func (r *FileListRepo) Path(name string) string {
	return filepath.Join(r.listsDir, r.FileName(name))
}

// List returns the base names of all saved lists, sorted.
func (r *FileListRepo) List() ([]string, error) {
	entries, err := r.fs.ReadDir(r.listsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read lists directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), r.extension) {
			continue
		}
		name := r.BaseName(entry.Name())
		if r.fs.ValidateIdentifier(name) != nil {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Exists checks if a list with the given base name exists.
func (r *FileListRepo) Exists(name string) (bool, error) {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return false, fmt.Errorf("invalid list name: %w", err)
	}
	return r.fs.Exists(r.Path(name))
}

// Load reads the items of a saved list.
func (r *FileListRepo) Load(name string) ([]string, error) {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return nil, fmt.Errorf("invalid list name: %w", err)
	}

	f, err := r.fs.Open(r.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
		}
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	items, err := listfile.Read(f)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save writes items to a list, replacing any existing file.
func (r *FileListRepo) Save(name string, items []string) error {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return fmt.Errorf("invalid list name: %w", err)
	}

	var buf bytes.Buffer
	if err := listfile.Write(&buf, items); err != nil {
		return err
	}

	if err := r.fs.MkdirAll(r.listsDir, 0755); err != nil {
		return fmt.Errorf("failed to create lists directory: %w", err)
	}

	if err := r.fs.AtomicWrite(r.Path(name), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}

	return nil
}

// Delete removes a saved list.
func (r *FileListRepo) Delete(name string) error {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return fmt.Errorf("invalid list name: %w", err)
	}

	exists, err := r.fs.Exists(r.Path(name))
	if err != nil {
		return fmt.Errorf("failed to check list file: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, r.Path(name))
	}

	if err := r.fs.Remove(r.Path(name)); err != nil {
		return fmt.Errorf("failed to delete list file: %w", err)
	}
	return nil
}
