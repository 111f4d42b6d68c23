package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

func (a *App) listCmd() *cobra.Command {
	var poolOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tokens and where they are placed",
		Long: `List every token with its label and location, ordered by id.

With --pool only the unplaced tokens are listed.`,
		Example: `  slotfill list
  slotfill list --pool`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tokens := store.Tokens()
			if len(tokens) == 0 {
				fmt.Fprintln(out, "No tokens yet. Create one with 'slotfill add'.")
				return nil
			}

			listed := 0
			for _, tok := range tokens {
				loc, ok := store.Locate(tok.ID)
				if !ok {
					continue
				}
				if poolOnly && loc.List != timetable.PoolID {
					continue
				}
				fmt.Fprintf(out, "  %s %s  %s  %s\n",
					locationSymbol(loc.List),
					formatToken(pad(tok.ID, 8)),
					pad(view.LocationLabel(store.Topology(), loc.List), 14),
					tokenText(tok),
				)
				listed++
			}

			if listed == 0 {
				fmt.Fprintln(out, "The pool is empty.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&poolOnly, "pool", false, "Only list tokens in the pool")
	return cmd
}

func locationSymbol(listID string) string {
	if listID == timetable.PoolID {
		return formatPool("○")
	}
	return formatToken("●")
}
