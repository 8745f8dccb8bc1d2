package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/listmaker/internal/config"
	"github.com/danieljhkim/listmaker/internal/fsops"
	"github.com/danieljhkim/listmaker/internal/logging"
	"github.com/danieljhkim/listmaker/internal/prompt"
	"github.com/danieljhkim/listmaker/internal/stores"
)

// env bundles the dependencies every command needs.
type env struct {
	paths    *config.Paths
	settings config.Settings
	repo     *stores.FileListRepo
	logger   *log.Logger
}

// newEnv loads paths and settings and creates real implementations of all
// dependencies.
func newEnv(cmd *cobra.Command) (*env, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, err
	}
	paths.Apply(settings)

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	opts := logging.DefaultOptions()
	opts.Level = settings.LogLevel
	if verbose {
		opts.Level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), opts)
	if err != nil {
		return nil, err
	}

	repo := stores.NewFileListRepo(fsops.NewRealFS(), paths.Lists, settings.Extension)
	logger.Debug("environment ready", "lists", paths.Lists, "config", paths.Config)

	return &env{
		paths:    paths,
		settings: settings,
		repo:     repo,
		logger:   logger,
	}, nil
}

// newPrompter creates a Prompter on the command's input and output.
func (e *env) newPrompter(cmd *cobra.Command) *prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithPrefix(e.settings.ErrorPrefix),
		prompt.WithLogger(e.logger),
	)
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
