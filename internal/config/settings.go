package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danieljhkim/listmaker/internal/fsops"
)

// Settings holds the user-tunable options read from config.toml.
type Settings struct {
	// Extension is appended to list base names ("groceries" -> "groceries.txt").
	Extension string `toml:"extension" json:"extension"`

	// ListsDir overrides the lists directory; relative paths are under Root.
	ListsDir string `toml:"lists_dir" json:"lists_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" json:"log_level"`

	// ErrorPrefix starts every input diagnostic line.
	ErrorPrefix string `toml:"error_prefix" json:"error_prefix"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Extension:   ".txt",
		LogLevel:    "warn",
		ErrorPrefix: "Error: ",
	}
}

// LoadSettings reads settings from a TOML file. Keys missing from the file
// keep their default values, and a missing file yields DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return DefaultSettings(), fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return DefaultSettings(), fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}

	return settings, nil
}

// Validate checks the settings for values that would produce bad file names.
func (s Settings) Validate() error {
	if !strings.HasPrefix(s.Extension, ".") || len(s.Extension) < 2 {
		return fmt.Errorf("invalid extension %q: must start with a dot", s.Extension)
	}
	if strings.ContainsAny(s.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q: must not contain path separators", s.Extension)
	}
	return nil
}

// Save writes settings to path as TOML through fsys, creating parent
// directories. The file is replaced atomically, so a failed write keeps the
// previous config.
func (s Settings) Save(fsys fsops.FS, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := fsys.AtomicWrite(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
