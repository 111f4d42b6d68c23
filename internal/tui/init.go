package tui

import (
	"fmt"
	"os"

	"github.com/javiermolinar/slotfill/internal/config"
	"github.com/javiermolinar/slotfill/internal/db"
)

// InitState records which files are missing on the first run. Nothing is
// created until the user agrees in the init modal.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState checks whether the config file and the session database exist.
func DetectInitState(cfg *config.Config) (InitState, error) {
	state := InitState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
	}

	var err error
	if state.ConfigMissing, err = missing(state.ConfigPath); err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	if state.DBMissing, err = missing(state.DBPath); err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}
	state.NeedsInit = state.ConfigMissing || state.DBMissing
	return state, nil
}

// missing reports whether nothing exists at path. An empty path counts as missing.
func missing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	switch _, err := os.Stat(path); {
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		return true, nil
	default:
		return false, err
	}
}

// initializeStorage writes the default config and opens the database after
// the user accepted the init modal.
func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}
	if m.repo != nil {
		return m, nil
	}

	repo, err := db.Open(m.initState.DBPath)
	if err != nil {
		return m, fmt.Errorf("initializing database: %w", err)
	}
	m.repo = repo
	return m, nil
}
