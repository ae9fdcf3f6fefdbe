package cliconfig

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Defaults.Cipher != "aes256-ctr" {
		t.Errorf("expected default cipher aes256-ctr, got %q", cfg.Defaults.Cipher)
	}
	if cfg.Defaults.KDF != "bcrypt" {
		t.Errorf("expected default kdf bcrypt, got %q", cfg.Defaults.KDF)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
defaults:
  cipher: aes128-ctr
  kdf: none
  kdf_rounds: 1
  comment: test@example.com
logging:
  level: debug
  format: json
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Defaults.Cipher != "aes128-ctr" {
		t.Errorf("expected cipher aes128-ctr, got %q", cfg.Defaults.Cipher)
	}
	if cfg.Defaults.Comment != "test@example.com" {
		t.Errorf("expected comment to round-trip, got %q", cfg.Defaults.Comment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", cfg.Logging.Level)
	}
}

func TestParse_InvalidKDFRounds(t *testing.T) {
	data := []byte(`
defaults:
  kdf_rounds: 0
`)
	if _, err := Parse(data); err == nil {
		t.Error("expected error for kdf_rounds: 0")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if *cfg != *Default() {
		t.Error("Load(\"\") should return Default()")
	}
}
