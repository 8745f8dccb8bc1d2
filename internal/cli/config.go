package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/listmaker/internal/config"
	"github.com/danieljhkim/listmaker/internal/fsops"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// configView is the JSON form of config show.
type configView struct {
	Root     string          `json:"root"`
	Config   string          `json:"config"`
	Lists    string          `json:"lists"`
	Settings config.Settings `json:"settings"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	view := configView{
		Root:     e.paths.Root,
		Config:   e.paths.Config,
		Lists:    e.paths.Lists,
		Settings: e.settings,
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, view)
	}

	PrintSection(out, "Paths")
	PrintLabelValue(out, "Root", view.Root)
	PrintLabelValue(out, "Config", view.Config)
	PrintLabelValue(out, "Lists", view.Lists)

	PrintSection(out, "Settings")
	PrintLabelValue(out, "extension", e.settings.Extension)
	PrintLabelValue(out, "lists_dir", e.settings.ListsDir)
	PrintLabelValue(out, "log_level", e.settings.LogLevel)
	PrintLabelValue(out, "error_prefix", fmt.Sprintf("%q", e.settings.ErrorPrefix))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("failed to get config paths: %w", err)
	}

	fsys := fsops.NewRealFS()
	if !configForce {
		exists, err := fsys.Exists(paths.Config)
		if err != nil {
			return fmt.Errorf("failed to check config file: %w", err)
		}
		if exists {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", paths.Config)
		}
	}

	if err := config.DefaultSettings().Save(fsys, paths.Config); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), map[string]string{"config": paths.Config})
	}
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", paths.Config))
	return nil
}
