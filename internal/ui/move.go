package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui/view"
)

// ErrAmbiguousSlot is returned when a bare slot code exists on several days.
var ErrAmbiguousSlot = errors.New("slot code matches several days")

func (a *App) moveCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "move [token-id] [destination]",
		Short: "Move a token to a slot or back to the pool",
		Long: `Move a token into a grid slot or back to the pool.

The destination is "pool", a slot id such as Monday_A11, or a bare
slot code such as A11 when that code is used on a single day.
The token is appended unless --index is given.

Examples:
  slotfill move box-1 Monday_A11
  slotfill move box-2 B23 --index 0
  slotfill move box-1 pool`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var dest string
			store, err := a.mutate(cmd.Context(), func(s *timetable.Store) error {
				var err error
				dest, err = resolveDest(s.Topology(), args[1])
				if err != nil {
					return err
				}
				return moveToken(s, id, dest, index)
			})
			if err != nil {
				return fmt.Errorf("moving token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", formatToken(id), view.LocationLabel(store.Topology(), dest))
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "Position in the destination (default: append)")
	return cmd
}

// resolveDest turns a user supplied destination into a list id.
func resolveDest(top *timetable.Topology, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if strings.EqualFold(arg, timetable.PoolID) {
		return timetable.PoolID, nil
	}
	if top.HasSlot(arg) {
		return arg, nil
	}

	ids, ok := top.ResolveCode(strings.ToUpper(arg))
	if !ok {
		return "", fmt.Errorf("%w: %s", timetable.ErrUnknownList, arg)
	}
	if len(ids) > 1 {
		return "", fmt.Errorf("%w: %s (%s)", ErrAmbiguousSlot, arg, strings.Join(ids, ", "))
	}
	return ids[0], nil
}

// moveToken locates id and moves it to dest. A negative index appends.
func moveToken(s *timetable.Store, id, dest string, index int) error {
	loc, ok := s.Locate(id)
	if !ok {
		return fmt.Errorf("%w: %s", timetable.ErrTokenNotFound, id)
	}

	if index < 0 {
		index = len(s.List(dest))
		if loc.List == dest {
			index--
		}
	}

	return s.Move(timetable.MoveRequest{
		Source:      loc.List,
		SourceIndex: loc.Index,
		Dest:        dest,
		DestIndex:   index,
		ID:          id,
	})
}
