package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the timetable to a JSON file",
		Long: `Write the saved timetable to a JSON snapshot file.

Without a path the configured export path is used (timetable.json).

Example:
  slotfill export ~/backup/week.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.config.Storage.ExportPath
			if len(args) == 1 {
				target = args[0]
			}
			path, err := resolvePath(target)
			if err != nil {
				return err
			}

			store, err := a.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := timetable.WriteSnapshotFile(path, store.Export()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tokens to %s\n", store.Len(), path)
			return nil
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Replace the timetable with a JSON file",
		Long: `Replace the saved timetable with the contents of a JSON snapshot file.

The file is checked against the grid first. If anything is wrong the
saved timetable is left unchanged.

Example:
  slotfill import ~/backup/week.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file does not exist: %s", path)
				}
				return fmt.Errorf("checking file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory: %s", path)
			}

			snap, err := timetable.ReadSnapshotFile(path)
			if err != nil {
				return fmt.Errorf("invalid file: %w", err)
			}

			store, err := a.mutate(cmd.Context(), func(s *timetable.Store) error {
				return s.Import(snap)
			})
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tokens from %s\n", store.Len(), path)
			return nil
		},
	}
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
