package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.CurrencySymbol != "₪" {
		t.Fatalf("CurrencySymbol = %q, want ₪", cfg.General.CurrencySymbol)
	}
	if cfg.General.DefaultCategory != "Creative Services" {
		t.Fatalf("DefaultCategory = %q, want Creative Services", cfg.General.DefaultCategory)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "$"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.CurrencySymbol != "$" {
		t.Fatalf("CurrencySymbol = %q, want $", loaded.General.CurrencySymbol)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = filepath.Join(os.TempDir(), "budgie-data")

	if got := StatePath(cfg); got != filepath.Join(cfg.General.DataDir, "budgie.db") {
		t.Fatalf("StatePath = %q", got)
	}
}
