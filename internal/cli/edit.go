package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/listmaker/internal/editor"
	"github.com/danieljhkim/listmaker/internal/liststore"
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a list interactively",
	Long: `Start the interactive menu.

With a name, the saved list of that name is opened first. If no such list
exists yet, editing starts on an empty list that will be saved under that name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	store := liststore.New()
	ed := editor.New(store, e.repo, e.newPrompter(cmd), cmd.OutOrStdout(), e.logger)

	if len(args) == 1 {
		name := args[0]
		exists, err := e.repo.Exists(name)
		if err != nil {
			return err
		}
		if exists {
			if err := ed.OpenList(cmd.Context(), name); err != nil {
				return fmt.Errorf("failed to open list %q: %w", name, err)
			}
		} else {
			store.SetFileName(e.repo.FileName(name))
			PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("Starting new list: %s", e.repo.Path(name)))
		}
	}

	return ed.Run(cmd.Context())
}
