package cli

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the items of a saved list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// listDetail is the JSON form of a saved list.
type listDetail struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Items []string `json:"items"`
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	items, err := e.repo.Load(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, listDetail{Name: name, Path: e.repo.Path(name), Items: items})
	}

	PrintSection(out, name)
	if len(items) == 0 {
		PrintEmptyState(out, "[The list is empty]")
		return nil
	}
	PrintNumberedList(out, items, 0)
	return nil
}
