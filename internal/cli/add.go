package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/listmaker/internal/liststore"
	"github.com/danieljhkim/listmaker/internal/stores"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <item>...",
	Short: "Append items to a saved list",
	Long: `Append one or more items to the end of a saved list without opening the menu.

The list is created if it does not exist yet.`,
	Example: `  listmaker add groceries milk eggs "whole wheat bread"`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	store := liststore.New()

	items, err := e.repo.Load(name)
	switch {
	case err == nil:
		store.Replace(items, e.repo.FileName(name))
	case errors.Is(err, stores.ErrNotFound):
		e.logger.Debug("creating new list", "name", name)
	default:
		return err
	}

	for _, item := range args[1:] {
		if err := store.Add(item); err != nil {
			return fmt.Errorf("invalid item %q: %w", item, err)
		}
	}

	if err := e.repo.Save(name, store.Items()); err != nil {
		return fmt.Errorf("failed to save list %q: %w", name, err)
	}
	store.MarkClean()

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), listDetail{
			Name:  name,
			Path:  e.repo.Path(name),
			Items: store.Items(),
		})
	}

	added := len(args) - 1
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added %s to %s (%s total)",
		PrintCount(added, "item", "items"), name, PrintCount(store.Len(), "item", "items")))
	return nil
}
