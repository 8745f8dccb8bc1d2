package fsops

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var _ FS = (*MemFS)(nil)

// MemFS implements FS in memory for testing.
// Setting ReadErr or WriteErr makes every Open or AtomicWrite fail.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool

	ReadErr  error
	WriteErr error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Open opens a file for reading.
func (m *MemFS) Open(path string) (io.ReadCloser, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ReadDir lists the files directly under path, sorted by name.
func (m *MemFS) ReadDir(path string) ([]fs.DirEntry, error) {
	dir := filepath.Clean(path)
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	var entries []fs.DirEntry
	for name, data := range m.files {
		if filepath.Dir(name) == dir {
			entries = append(entries, memEntry{name: filepath.Base(name), size: int64(len(data))})
		}
	}
	for name := range m.dirs {
		if name != dir && filepath.Dir(name) == dir {
			entries = append(entries, memEntry{name: filepath.Base(name), dir: true})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// MkdirAll records path and its parents as directories.
func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if parent := filepath.Dir(dir); parent == dir {
			return nil
		}
	}
}

// Remove removes a file.
func (m *MemFS) Remove(path string) error {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, path)
	return nil
}

// AtomicWrite stores a copy of data at path.
func (m *MemFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	path = filepath.Clean(path)
	if err := m.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	m.files[path] = bytes.Clone(data)
	return nil
}

// Exists checks if a file or directory exists.
func (m *MemFS) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// ValidateIdentifier validates an identifier for safety.
func (m *MemFS) ValidateIdentifier(id string) error {
	return ValidateIdentifier(id)
}

// WriteFile seeds a file, creating its parent directories.
func (m *MemFS) WriteFile(path, content string) {
	_ = m.MkdirAll(filepath.Dir(path), 0755)
	m.files[filepath.Clean(path)] = []byte(content)
}

// ReadFile returns the content of a file and whether it exists.
func (m *MemFS) ReadFile(path string) (string, bool) {
	data, ok := m.files[filepath.Clean(path)]
	return string(data), ok
}

// String lists the stored files, for test failure messages.
func (m *MemFS) String() string {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("MemFS[%s]", strings.Join(names, ", "))
}

type memEntry struct {
	name string
	size int64
	dir  bool
}

func (e memEntry) Name() string               { return e.name }
func (e memEntry) IsDir() bool                { return e.dir }
func (e memEntry) Type() fs.FileMode          { return e.Mode().Type() }
func (e memEntry) Info() (fs.FileInfo, error) { return e, nil }
func (e memEntry) Size() int64                { return e.size }
func (e memEntry) ModTime() time.Time         { return time.Time{} }
func (e memEntry) Sys() any                   { return nil }

func (e memEntry) Mode() fs.FileMode {
	if e.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
