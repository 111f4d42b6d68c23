package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func (a *App) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [label]",
		Short: "Add a new token to the pool",
		Long: `Create a token in the pool. The label is optional and can be
changed later with 'slotfill edit'.

Example:
  slotfill add "Algebra, room 204"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			_, err := a.mutate(cmd.Context(), func(s *timetable.Store) error {
				id = s.AddToken()
				if len(args) == 1 {
					return s.EditToken(id, strings.TrimSpace(args[0]))
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s in the pool\n", formatToken(id))
			return nil
		},
	}
}

func (a *App) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [token-id] [label]",
		Short: "Change the label of a token",
		Long: `Replace the label of an existing token. An empty label clears it.

Example:
  slotfill edit box-3 "Physics lab"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			_, err := a.mutate(cmd.Context(), func(s *timetable.Store) error {
				return s.EditToken(id, strings.TrimSpace(args[1]))
			})
			if err != nil {
				return fmt.Errorf("editing token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatToken(id))
			return nil
		},
	}
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [token-id]",
		Aliases: []string{"rm"},
		Short:   "Delete a token",
		Long: `Delete a token from the pool or from the slot it is placed in.

Example:
  slotfill remove box-3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			_, err := a.mutate(cmd.Context(), func(s *timetable.Store) error {
				if !s.RemoveToken(id) {
					return fmt.Errorf("%w: %s", timetable.ErrTokenNotFound, id)
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("removing token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatToken(id))
			return nil
		},
	}
}
