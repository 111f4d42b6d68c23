package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Grid.Days) != 5 {
		t.Errorf("expected 5 days, got %d", len(cfg.Grid.Days))
	}
	if len(cfg.Grid.Columns) != 8 {
		t.Errorf("expected 8 columns, got %d", len(cfg.Grid.Columns))
	}
	if !cfg.Grid.Columns[3].Lunch {
		t.Error("expected column 4 to be lunch")
	}
	if cfg.Storage.ExportPath != "timetable.json" {
		t.Errorf("expected export_path timetable.json, got %s", cfg.Storage.ExportPath)
	}
	if !cfg.Storage.Autosave {
		t.Error("expected autosave enabled by default")
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	top, err := cfg.Topology()
	if err != nil {
		t.Fatalf("Topology failed: %v", err)
	}
	if got := len(top.SlotIDs()); got != 35 {
		t.Errorf("expected 35 slots, got %d", got)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
days = ["Mon", "Tue"]
codes = [["A1", "", "B1"], ["C1", "", "D1"]]

[[grid.columns]]
label = "morning"

[[grid.columns]]
label = "Lunch"
lunch = true

[[grid.columns]]
label = "afternoon"

[storage]
db_path = "/tmp/test.db"
export_path = "/tmp/out.json"
autosave = false

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Storage.ExportPath != "/tmp/out.json" {
		t.Errorf("expected export_path /tmp/out.json, got %s", cfg.Storage.ExportPath)
	}
	if cfg.Storage.Autosave {
		t.Error("expected autosave disabled")
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}

	top, err := cfg.Topology()
	if err != nil {
		t.Fatalf("Topology failed: %v", err)
	}
	if id, ok := top.Cell(1, 2); !ok || id != "Tue_D1" {
		t.Errorf("Cell(1,2) = %q, %v, want Tue_D1", id, ok)
	}
	if _, ok := top.Cell(0, 1); ok {
		t.Error("lunch column should not be droppable")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("SLOTFILL_DB_PATH", "/tmp/env.db")
	t.Setenv("SLOTFILL_EXPORT_PATH", "/tmp/env.json")
	t.Setenv("SLOTFILL_AUTOSAVE", "false")
	t.Setenv("SLOTFILL_UI_THEME", "frappe")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path /tmp/env.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Storage.ExportPath != "/tmp/env.json" {
		t.Errorf("expected export_path /tmp/env.json, got %s", cfg.Storage.ExportPath)
	}
	if cfg.Storage.Autosave {
		t.Error("expected autosave disabled by env")
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidAutosaveEnv(t *testing.T) {
	t.Setenv("SLOTFILL_AUTOSAVE", "sometimes")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err == nil {
		t.Fatal("expected error for invalid SLOTFILL_AUTOSAVE")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[grid\ndays = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "codes rows mismatch days",
			modify:  func(c *Config) { c.Grid.Days = c.Grid.Days[:3] },
			wantErr: true,
		},
		{
			name:    "code under lunch column",
			modify:  func(c *Config) { c.Grid.Codes[0][3] = "L1" },
			wantErr: true,
		},
		{
			name:    "missing code",
			modify:  func(c *Config) { c.Grid.Codes[2][0] = "" },
			wantErr: true,
		},
		{
			name:    "empty column label",
			modify:  func(c *Config) { c.Grid.Columns[0].Label = " " },
			wantErr: true,
		},
		{
			name:    "empty db path",
			modify:  func(c *Config) { c.Storage.DBPath = "" },
			wantErr: true,
		},
		{
			name:    "empty export path",
			modify:  func(c *Config) { c.Storage.ExportPath = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	cfg.Storage.DBPath = "/tmp/roundtrip.db"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", loaded.UI.Theme)
	}
	if loaded.Storage.DBPath != "/tmp/roundtrip.db" {
		t.Errorf("expected db_path /tmp/roundtrip.db, got %s", loaded.Storage.DBPath)
	}
	if len(loaded.Grid.Codes) != 5 || loaded.Grid.Codes[4][7] != "B24" {
		t.Errorf("grid codes not preserved: %v", loaded.Grid.Codes)
	}
	if !loaded.Grid.Columns[3].Lunch {
		t.Error("lunch column not preserved")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("expandPath(~/x/y.db) = %s", got)
	}
	if got := expandPath("/abs/y.db"); got != "/abs/y.db" {
		t.Errorf("expandPath(/abs/y.db) = %s", got)
	}
}
