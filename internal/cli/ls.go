package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved lists",
	Args:    cobra.NoArgs,
	RunE:    runLs,
}

// listSummary is the JSON form of one saved list in ls output.
type listSummary struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Items int    `json:"items"`
}

func runLs(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	names, err := e.repo.List()
	if err != nil {
		return err
	}

	summaries := make([]listSummary, 0, len(names))
	for _, name := range names {
		items, err := e.repo.Load(name)
		if err != nil {
			return fmt.Errorf("failed to load list %q: %w", name, err)
		}
		summaries = append(summaries, listSummary{
			Name:  name,
			Path:  e.repo.Path(name),
			Items: len(items),
		})
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, summaries)
	}

	PrintSection(out, fmt.Sprintf("Saved Lists (%s)", e.repo.Dir()))
	if len(summaries) == 0 {
		PrintEmptyState(out, "No saved lists")
		return nil
	}
	for _, s := range summaries {
		PrintLabelValue(out, s.Name, PrintCount(s.Items, "item", "items"))
	}
	return nil
}
