// Package config manages listmaker configuration and filesystem paths.
//
// The default root is ~/.listmaker/ containing the lists/ directory and the
// config.toml settings file. The root can be moved with LISTMAKER_ROOT.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides the root directory.
const RootEnv = "LISTMAKER_ROOT"

// Paths contains all the filesystem paths used by listmaker.
type Paths struct {
	// Root is the base directory for all listmaker data (default: ~/.listmaker)
	Root string

	// Lists is the directory holding saved list files
	Lists string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for listmaker.
// Paths can be overridden with environment variables:
// - LISTMAKER_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".listmaker")
	}

	return &Paths{
		Root:   root,
		Lists:  filepath.Join(root, "lists"),
		Config: filepath.Join(root, "config.toml"),
	}, nil
}

// Apply points Lists at the directory named by the settings, if any.
// A relative lists_dir is resolved against Root.
func (p *Paths) Apply(s Settings) {
	if s.ListsDir == "" {
		return
	}
	if filepath.IsAbs(s.ListsDir) {
		p.Lists = filepath.Clean(s.ListsDir)
		return
	}
	p.Lists = filepath.Join(p.Root, s.ListsDir)
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Lists,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
