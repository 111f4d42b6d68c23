// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/slotfill/internal/timetable"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// GridConfig describes the fixed timetable grid.
type GridConfig struct {
	Days    []string       `toml:"days"`
	Columns []ColumnConfig `toml:"columns"`
	Codes   [][]string     `toml:"codes"` // one row per day, "" under lunch columns
}

// ColumnConfig is one time column of the grid.
type ColumnConfig struct {
	Label string `toml:"label"`
	Lunch bool   `toml:"lunch,omitempty"`
}

// StorageConfig holds session and export settings.
type StorageConfig struct {
	DBPath     string `toml:"db_path"`
	ExportPath string `toml:"export_path"`
	Autosave   bool   `toml:"autosave"`
}

// Default returns the default configuration.
func Default() *Config {
	columns := timetable.DefaultColumns()
	cols := make([]ColumnConfig, len(columns))
	for i, c := range columns {
		cols[i] = ColumnConfig{Label: c.Label, Lunch: c.Lunch}
	}

	return &Config{
		Grid: GridConfig{
			Days:    timetable.DefaultDays(),
			Columns: cols,
			Codes:   timetable.DefaultCodes(),
		},
		Storage: StorageConfig{
			DBPath:     defaultDBPath(),
			ExportPath: timetable.DefaultExportName,
			Autosave:   true,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slotfill.db"
	}
	return filepath.Join(home, ".local", "share", "slotfill", "slotfill.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotfill", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Storage.ExportPath = expandPath(cfg.Storage.ExportPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// Grid slices from the file replace the defaults instead of extending them.
	defaults := cfg.Grid
	cfg.Grid = GridConfig{}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Grid.Days == nil {
		cfg.Grid.Days = defaults.Days
	}
	if cfg.Grid.Columns == nil {
		cfg.Grid.Columns = defaults.Columns
	}
	if cfg.Grid.Codes == nil {
		cfg.Grid.Codes = defaults.Codes
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SLOTFILL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLOTFILL_EXPORT_PATH"); v != "" {
		cfg.Storage.ExportPath = v
	}
	if v := os.Getenv("SLOTFILL_AUTOSAVE"); v != "" {
		autosave, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SLOTFILL_AUTOSAVE: %w", err)
		}
		cfg.Storage.Autosave = autosave
	}
	if v := os.Getenv("SLOTFILL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Topology(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Storage.ExportPath == "" {
		return errors.New("export_path must be set")
	}
	return nil
}

// Topology builds the grid layout described by the config.
func (c *Config) Topology() (*timetable.Topology, error) {
	cols := make([]timetable.Column, len(c.Grid.Columns))
	for i, col := range c.Grid.Columns {
		if strings.TrimSpace(col.Label) == "" {
			return nil, fmt.Errorf("column %d has no label", i+1)
		}
		cols[i] = timetable.Column{Label: col.Label, Lunch: col.Lunch}
	}
	return timetable.NewTopology(c.Grid.Days, cols, c.Grid.Codes)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
