// Package fsops provides filesystem operations with safety guarantees.
//
// All list file access in listmaker goes through the FS interface, which
// keeps writes atomic and rejects list names that could escape the lists
// directory.
//
// Key features:
//   - Atomic writes using temp file + rename
//   - Identifier validation for user-supplied list names
//   - Testable via the FS interface
package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]fs.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ValidateIdentifier validates an identifier for safety.
	ValidateIdentifier(id string) error
}

// tempPattern names in-flight writes; it never carries a list extension, so
// an interrupted write is not listed as a saved list.
const tempPattern = ".listmaker-tmp-*"

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Open opens a file for reading.
func (r *RealFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ReadDir lists the entries of a directory.
func (r *RealFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// MkdirAll creates a directory and all parent directories.
func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove removes a file or empty directory.
func (r *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// AtomicWrite writes data to a temp file next to path and renames it into
// place. Readers see either the old list or the new one, never a partial file.
func (r *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	renamed = true
	return nil
}

// Exists reports whether anything is present at path. Symlinks are not
// followed.
func (r *RealFS) Exists(path string) (bool, error) {
	switch _, err := os.Lstat(path); {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// ValidateIdentifier validates an identifier (a list base name) for safety.
// Returns an error if the identifier contains invalid characters or path traversal attempts.
func (r *RealFS) ValidateIdentifier(id string) error {
	return ValidateIdentifier(id)
}

// ValidateIdentifier is the check behind RealFS.ValidateIdentifier, usable by
// other FS implementations. A valid list name is one path element with no
// surrounding space, no NUL or line break and no leading "..".
func ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("invalid identifier: empty")
	case strings.TrimSpace(id) != id:
		return fmt.Errorf("invalid identifier %q: leading or trailing whitespace", id)
	case strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, filepath.Separator):
		return fmt.Errorf("invalid identifier %q: must not contain path separators", id)
	case id == "." || strings.HasPrefix(id, ".."):
		return fmt.Errorf("invalid identifier %q: path traversal not allowed", id)
	case strings.ContainsAny(id, "\x00\r\n"):
		return fmt.Errorf("invalid identifier %q: control characters not allowed", id)
	}
	return nil
}
