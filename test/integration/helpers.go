package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/listmaker/internal/config"
	"github.com/danieljhkim/listmaker/internal/editor"
	"github.com/danieljhkim/listmaker/internal/fsops"
	"github.com/danieljhkim/listmaker/internal/liststore"
	"github.com/danieljhkim/listmaker/internal/prompt"
	"github.com/danieljhkim/listmaker/internal/stores"
)

// testEnv is a lists directory on disk with the settings used to reach it.
type testEnv struct {
	paths    *config.Paths
	settings config.Settings
	repo     *stores.FileListRepo
}

// setupTestEnv creates a root directory under t.TempDir, optionally writing
// configTOML to its config file, and resolves paths the way the CLI does.
func setupTestEnv(t *testing.T, configTOML string) *testEnv {
	t.Helper()

	root := t.TempDir()
	t.Setenv(config.RootEnv, root)

	paths, err := config.DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if configTOML != "" {
		if err := os.WriteFile(paths.Config, []byte(configTOML), 0644); err != nil {
			t.Fatal(err)
		}
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	paths.Apply(settings)
	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	return &testEnv{
		paths:    paths,
		settings: settings,
		repo:     stores.NewFileListRepo(fsops.NewRealFS(), paths.Lists, settings.Extension),
	}
}

// run drives one editing session with the given input lines and returns the
// final list and the session output.
func (e *testEnv) run(t *testing.T, lines ...string) (*liststore.Store, string) {
	t.Helper()

	var out bytes.Buffer
	input := prompt.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out,
		prompt.WithPrefix(e.settings.ErrorPrefix))
	store := liststore.New()
	ed := editor.New(store, e.repo, input, &out, nil)

	if err := ed.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\noutput:\n%s", err, out.String())
	}
	return store, out.String()
}

// readFile returns the raw content of a list file.
func (e *testEnv) readFile(t *testing.T, fileName string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.paths.Lists, fileName))
	if err != nil {
		t.Fatalf("read %s: %v", fileName, err)
	}
	return string(data)
}
