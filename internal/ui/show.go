package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func (a *App) showCmd() *cobra.Command {
	var (
		noColor bool
		outline bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the timetable grid",
		Long: `Display the saved timetable: the grid with its slot codes and
placed tokens, the pool, and occupancy stats.

Use --outline for a plain listing of the filled slots per day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outline {
				return timetable.WriteOutline(out, store)
			}

			fmt.Fprintf(out, "=== %s ===\n\n", formatHeader("Timetable"))
			PrintGrid(out, store, PrintOpts{Width: width})
			fmt.Fprintln(out)
			PrintPool(out, store)
			fmt.Fprintln(out)
			PrintStats(out, store.Stats())
			if line := a.lastSaved(cmd.Context()); line != "" {
				fmt.Fprintln(out, formatMuted(line))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&outline, "outline", false, "Print a plain-text outline instead of the grid")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (default: terminal width)")
	return cmd
}

// savedAtReporter is implemented by session stores that record save times.
type savedAtReporter interface {
	SavedAt(ctx context.Context) (time.Time, error)
}

// lastSaved describes when the session was written, or "" when the store
// does not track it.
func (a *App) lastSaved(ctx context.Context) string {
	r, ok := a.repo.(savedAtReporter)
	if !ok {
		return ""
	}
	at, err := r.SavedAt(ctx)
	if err != nil {
		return ""
	}
	if at.IsZero() {
		return "Last saved: never"
	}
	return "Last saved: " + humanize.Time(at)
}
