package fsops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRealFS_ValidateIdentifier(t *testing.T) {
	fs := &RealFS{}

	tests := []struct {
		name      string
		id        string
		wantError bool
	}{
		{
			name:      "valid simple identifier",
			id:        "groceries",
			wantError: false,
		},
		{
			name:      "valid with spaces and dashes",
			id:        "weekend trip - packing",
			wantError: false,
		},
		{
			name:      "valid unicode",
			id:        "einkäufe",
			wantError: false,
		},
		{
			name:      "hidden name with single dot",
			id:        ".todo",
			wantError: false,
		},
		{
			name:      "surrounding whitespace",
			id:        " groceries ",
			wantError: true,
		},
		{
			name:      "dot-dot prefix",
			id:        "..groceries",
			wantError: true,
		},
		{
			name:      "embedded newline",
			id:        "a\nb",
			wantError: true,
		},
		{
			name:      "empty identifier",
			id:        "",
			wantError: true,
		},
		{
			name:      "current directory",
			id:        ".",
			wantError: true,
		},
		{
			name:      "parent directory",
			id:        "..",
			wantError: true,
		},
		{
			name:      "path with separator",
			id:        "lists/groceries",
			wantError: true,
		},
		{
			name:      "path with backslash",
			id:        "lists\\groceries",
			wantError: true,
		},
		{
			name:      "absolute path",
			id:        "/etc/hosts",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantError %v", tt.id, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "exists.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		exists, err := fs.Exists(testFile)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing file")
		}
	})

	t.Run("non-existing file", func(t *testing.T) {
		nonExistent := filepath.Join(tmpDir, "does-not-exist.txt")
		exists, err := fs.Exists(nonExistent)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for non-existing file")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		exists, err := fs.Exists(tmpDir)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing directory")
		}
	})
}

func TestRealFS_MkdirAll(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("create nested directories", func(t *testing.T) {
		nestedPath := filepath.Join(tmpDir, "a", "b", "c")
		err := fs.MkdirAll(nestedPath, 0755)
		if err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		// Verify directory exists
		if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
			t.Error("Nested directory was not created")
		}
	})

	t.Run("idempotent operation", func(t *testing.T) {
		dirPath := filepath.Join(tmpDir, "existing")
		
		// Create once
		if err := fs.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("First MkdirAll failed: %v", err)
		}

		// Create again - should not fail
		if err := fs.MkdirAll(dirPath, 0755); err != nil {
			t.Errorf("Second MkdirAll should not fail: %v", err)
		}
	})
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("write to new file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "atomic-new.txt")
		content := []byte("atomic content")

		err := fs.AtomicWrite(testFile, content, 0644)
		if err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		// Verify file exists and has correct content
		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("File content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "atomic-overwrite.txt")
		
		// Write initial content
		initialContent := []byte("initial")
		if err := os.WriteFile(testFile, initialContent, 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		// Overwrite with atomic write
		newContent := []byte("overwritten")
		err := fs.AtomicWrite(testFile, newContent, 0644)
		if err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		// Verify new content
		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(readContent) != string(newContent) {
			t.Errorf("File content not updated: got %q, want %q", readContent, newContent)
		}
	})

	t.Run("failed rename leaves no temp file", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "occupied")
		if err := os.MkdirAll(filepath.Join(target, "child"), 0755); err != nil {
			t.Fatal(err)
		}

		if err := fs.AtomicWrite(target, []byte("x"), 0644); err == nil {
			t.Fatal("AtomicWrite over a non-empty directory should fail")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".listmaker-tmp-") {
				t.Errorf("temp file %s left behind", e.Name())
			}
		}
	})
}

func TestRealFS_Open(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("open existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "read-test.txt")
		content := []byte("milk\neggs\n")
		if err := os.WriteFile(testFile, content, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		rc, err := fs.Open(testFile)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		defer rc.Close()

		readContent, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("failed to read: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("open non-existing file", func(t *testing.T) {
		_, err := fs.Open(filepath.Join(tmpDir, "does-not-exist.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Open error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestRealFS_ReadDir(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := fs.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Name() != "a.txt" || entries[1].Name() != "b.txt" {
		t.Errorf("ReadDir returned unexpected entries: %v", entries)
	}
}

func TestRealFS_Remove(t *testing.T) {
	fs := &RealFS{}

	tmpDir, err := os.MkdirTemp("", "fsops-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("remove existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "remove-me.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		err := fs.Remove(testFile)
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}

		// Verify file is gone
		if _, err := os.Stat(testFile); !os.IsNotExist(err) {
			t.Error("File should have been removed")
		}
	})
}

func TestMemFS(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("/lists/a.txt", "one\n")

	t.Run("read back seeded file", func(t *testing.T) {
		rc, err := m.Open("/lists/a.txt")
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		data, _ := io.ReadAll(rc)
		if string(data) != "one\n" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("missing file is not exist", func(t *testing.T) {
		if _, err := m.Open("/lists/b.txt"); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Open error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("read dir lists files", func(t *testing.T) {
		if err := m.AtomicWrite("/lists/0.txt", []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		entries, err := m.ReadDir("/lists")
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 || entries[0].Name() != "0.txt" || entries[1].Name() != "a.txt" {
			t.Errorf("ReadDir = %v", entries)
		}
	})

	t.Run("injected errors", func(t *testing.T) {
		m.WriteErr = errors.New("disk full")
		defer func() { m.WriteErr = nil }()
		if err := m.AtomicWrite("/lists/c.txt", nil, 0644); err == nil {
			t.Error("AtomicWrite ignored WriteErr")
		}
		if ok, _ := m.Exists("/lists/c.txt"); ok {
			t.Error("failed write created the file")
		}
	})
}
