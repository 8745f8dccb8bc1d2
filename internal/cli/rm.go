package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/listmaker/internal/stores"
)

var rmYes bool

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved list",
	Long: `Delete a saved list file.

Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Delete without asking for confirmation")
}

func runRm(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	exists, err := e.repo.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", stores.ErrNotFound, name)
	}

	if !rmYes {
		confirm, err := e.newPrompter(cmd).YesNo(fmt.Sprintf("Delete %s", e.repo.Path(name)))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirm {
			PrintInfo(cmd.OutOrStdout(), "Nothing deleted.")
			return nil
		}
	}

	if err := e.repo.Delete(name); err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), map[string]string{"deleted": name})
	}
	PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deleted %s", e.repo.Path(name)))
	return nil
}
