package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.General.DataFile != "budget.csv" {
		t.Fatalf("DataFile = %q, want budget.csv", cfg.General.DataFile)
	}
}

func TestSaveToLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DataFile = "/tmp/money.csv"
	cfg.General.RecentLimit = 3
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Log.Level = "debug"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.General.DataFile != "budget.csv" {
		t.Errorf("DataFile = %q, want default budget.csv", cfg.General.DataFile)
	}
	if cfg.General.RecentLimit != 8 {
		t.Errorf("RecentLimit = %d, want default 8", cfg.General.RecentLimit)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetDataFile_EnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataFile = "from-config.csv"

	t.Setenv(DataFileEnv, "")
	if got := GetDataFile(cfg); got != "from-config.csv" {
		t.Fatalf("GetDataFile = %q, want from-config.csv", got)
	}

	t.Setenv(DataFileEnv, "from-env.csv")
	if got := GetDataFile(cfg); got != "from-env.csv" {
		t.Fatalf("GetDataFile = %q, want from-env.csv", got)
	}
}

func TestDir_UsesXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got, want := Path(), filepath.Join(xdg, "pbudget", "config.toml"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
	if Exists() {
		t.Fatal("Exists reported a config file in an empty dir")
	}
}
