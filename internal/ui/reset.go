package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every token and empty the grid",
		Long: `Clear the saved timetable: all tokens are deleted and the id
counter starts again at box-1. Asks for confirmation unless --yes is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if store.Len() == 0 && store.Counter() == 1 {
				fmt.Fprintln(out, "Nothing to reset.")
				return nil
			}

			if !yes {
				question := fmt.Sprintf("Delete %d tokens (%d placed)?", store.Len(), store.Stats().Placed)
				if !promptYesNo(cmd.InOrStdin(), out, question) {
					fmt.Fprintln(out, "Reset cancelled.")
					return nil
				}
			}

			if err := a.repo.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Fprintln(out, "Timetable cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
