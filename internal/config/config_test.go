package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Language = LanguageChinese
	cfg.RevealTarget = true
	cfg.Seed = 1234
	cfg.Log.Enabled = true

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", *loaded, *cfg)
	}
}

func TestReadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	tmpDir := t.TempDir()
	partial := "reveal_target: true\n"
	if err := os.MkdirAll(filepath.Join(tmpDir, ".guessnumber"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".guessnumber", "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if !cfg.RevealTarget {
		t.Error("RevealTarget: got false, want true")
	}
	if cfg.Language != LanguageEnglish {
		t.Errorf("Language: got %q, want %q", cfg.Language, LanguageEnglish)
	}
	if cfg.Version != 1 {
		t.Errorf("Version: got %d, want 1", cfg.Version)
	}
}

func TestReadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(Dir(tmpDir), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(Path(tmpDir), []byte("language: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("got %+v, want defaults %+v", *cfg, *DefaultConfig())
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	if err := WriteConfig(tmpDir, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	t.Setenv("GUESSNUMBER_LANGUAGE", "zh")
	t.Setenv("GUESSNUMBER_REVEAL", "true")
	t.Setenv("GUESSNUMBER_SEED", "77")
	t.Setenv("GUESSNUMBER_LOG", "true")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Language != LanguageChinese {
		t.Errorf("Language: got %q, want %q", cfg.Language, LanguageChinese)
	}
	if !cfg.RevealTarget {
		t.Error("RevealTarget: got false, want true")
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed: got %d, want 77", cfg.Seed)
	}
	if !cfg.Log.Enabled {
		t.Error("Log.Enabled: got false, want true")
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	t.Setenv("GUESSNUMBER_SEED", "not-a-number")
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for non-numeric GUESSNUMBER_SEED")
	}
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		language string
		wantErr  bool
	}{
		{language: "en"},
		{language: "zh"},
		{language: "fr", wantErr: true},
		{language: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Language = tt.language
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLanguage) {
					t.Fatalf("Validate() error = %v, want ErrUnknownLanguage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Language = "fr"
	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Language != "fr" {
		t.Errorf("Language: got %q, want %q", loaded.Language, "fr")
	}
	if err := loaded.Validate(); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Validate() error = %v, want ErrUnknownLanguage", err)
	}
}
