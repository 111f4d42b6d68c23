// Package ui wires the slotfill command line: the root command opens the
// interactive editor and the subcommands edit the saved session directly.
package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotfill/internal/config"
	"github.com/javiermolinar/slotfill/internal/db"
	"github.com/javiermolinar/slotfill/internal/timetable"
	"github.com/javiermolinar/slotfill/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     timetable.Repository
	ownsRepo bool // repo was opened by the app and must be closed by it
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo timetable.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "slotfill",
		Short: "Place labeled tokens on a weekly timetable grid",
		Long: `Slotfill is a keyboard-driven weekly timetable editor.

Create tokens in the pool, label them, and move them into the grid's
day and time slots. The session is kept in a local database and can be
exported to or imported from a JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes slotfill-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.resetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotfill %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository when the app opened it.
func (a *App) Close() error {
	if a.repo == nil || !a.ownsRepo {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.ownsRepo = false
	return err
}

// ensureRepo opens the session database from the config when no repository
// was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// loadStore reads the saved session into a fresh store for the configured grid.
func (a *App) loadStore(ctx context.Context) (*timetable.Store, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	topology, err := a.config.Topology()
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}
	store := timetable.NewStore(topology)

	snap, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if snap == nil {
		return store, nil
	}
	if err := store.Import(snap); err != nil {
		return nil, fmt.Errorf("saved session does not fit the grid: %w", err)
	}
	return store, nil
}

// saveStore replaces the saved session with the store contents.
func (a *App) saveStore(ctx context.Context, store *timetable.Store) error {
	if err := a.repo.Save(ctx, store.Export()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// mutate loads the session, applies fn and saves the result.
func (a *App) mutate(ctx context.Context, fn func(*timetable.Store) error) (*timetable.Store, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(store); err != nil {
		return nil, err
	}
	if err := a.saveStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}
