package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv(RootEnv, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}

		// Verify paths are constructed correctly
		if paths.Lists != filepath.Join(paths.Root, "lists") {
			t.Errorf("Lists path incorrect: got %s", paths.Lists)
		}
		if paths.Config != filepath.Join(paths.Root, "config.toml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}

		if filepath.Base(paths.Root) != ".listmaker" {
			t.Errorf("Root should end with .listmaker, got: %s", paths.Root)
		}
	})

	t.Run("respects LISTMAKER_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/listmaker/path"
		t.Setenv(RootEnv, customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Lists != filepath.Join(customRoot, "lists") {
			t.Errorf("Lists should be under custom root, got: %s", paths.Lists)
		}
	})
}

func TestPaths_Apply(t *testing.T) {
	base := func() *Paths {
		return &Paths{
			Root:   "/data/listmaker",
			Lists:  "/data/listmaker/lists",
			Config: "/data/listmaker/config.toml",
		}
	}

	tests := []struct {
		name     string
		listsDir string
		want     string
	}{
		{name: "empty keeps default", listsDir: "", want: "/data/listmaker/lists"},
		{name: "relative is under root", listsDir: "src", want: filepath.Join("/data/listmaker", "src")},
		{name: "absolute is used as is", listsDir: "/srv/lists/", want: filepath.Clean("/srv/lists/")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			s := DefaultSettings()
			s.ListsDir = tt.listsDir
			p.Apply(s)
			if p.Lists != tt.want {
				t.Errorf("Lists = %s, want %s", p.Lists, tt.want)
			}
		})
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	t.Run("creates all necessary directories", func(t *testing.T) {
		tmpDir := t.TempDir()

		paths := &Paths{
			Root:   filepath.Join(tmpDir, "listmaker"),
			Lists:  filepath.Join(tmpDir, "listmaker", "lists"),
			Config: filepath.Join(tmpDir, "listmaker", "config.toml"),
		}

		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories failed: %v", err)
		}

		for _, dir := range []string{paths.Root, paths.Lists} {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				t.Errorf("Directory %s was not created", dir)
			}
		}
	})

	t.Run("succeeds if directories already exist", func(t *testing.T) {
		tmpDir := t.TempDir()

		paths := &Paths{
			Root:   filepath.Join(tmpDir, "listmaker"),
			Lists:  filepath.Join(tmpDir, "listmaker", "lists"),
			Config: filepath.Join(tmpDir, "listmaker", "config.toml"),
		}

		if err := os.MkdirAll(paths.Lists, 0755); err != nil {
			t.Fatalf("failed to pre-create lists: %v", err)
		}

		if err := paths.EnsureDirectories(); err != nil {
			t.Errorf("EnsureDirectories should succeed with existing dirs: %v", err)
		}
	})
}
