package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"trithemius-backend/crypto"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "TRITHEMIUS_ADDR", "TRITHEMIUS_PORT", "TRITHEMIUS_MODE", "TRITHEMIUS_ALLOW_ORIGINS",
		"TRITHEMIUS_LOG_LEVEL", "TRITHEMIUS_LOG_FORMAT", "TRITHEMIUS_SHIFT", "TRITHEMIUS_PADDING",
		"TRITHEMIUS_MAX_TEXT", "TRITHEMIUS_SERVER_PORT",
	} {
		t.Setenv(key, "")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Cipher.Shift != crypto.DefaultShift {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Fatalf("unexpected listen addr %s", cfg.ListenAddr())
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	workDir := t.TempDir()
	chdir(t, workDir)

	yamlConfig := []byte(`server:
  port: 9000
  allow_origins: ["http://example.test"]
log:
  level: debug
cipher:
  shift: 5
  padding: counted
`)
	if err := os.WriteFile(filepath.Join(workDir, LocalFile), yamlConfig, 0o644); err != nil {
		t.Fatalf("write yaml config: %v", err)
	}

	t.Setenv("TRITHEMIUS_PORT", "9100")
	t.Setenv("TRITHEMIUS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Fatalf("expected env override for port, got %d", cfg.Server.Port)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected level from file, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Fatalf("expected default format to survive, got %s", cfg.Log.Format)
	}
	if cfg.Cipher.Shift != 5 || cfg.Cipher.Padding != "counted" {
		t.Fatalf("unexpected cipher config: %+v", cfg.Cipher)
	}

	opts, err := cfg.SystemOptions()
	if err != nil {
		t.Fatalf("system options: %v", err)
	}
	sys := crypto.NewSystem(opts...)
	if sys.Shift() != 5 || sys.Padding() != crypto.PaddingCounted {
		t.Fatalf("options not applied: shift %d padding %v", sys.Shift(), sys.Padding())
	}
}

func TestLoadPortEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tests := []struct {
		name string
		env  map[string]string
		want int
	}{
		{"file over default", nil, 9000},
		{"PORT over file", map[string]string{"PORT": "9200"}, 9200},
		{"TRITHEMIUS_PORT over PORT", map[string]string{"PORT": "9200", "TRITHEMIUS_PORT": "9100"}, 9100},
		{"nested name is not read", map[string]string{"TRITHEMIUS_SERVER_PORT": "9300"}, 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if cfg.Server.Port != tt.want {
				t.Errorf("port = %d, want %d", cfg.Server.Port, tt.want)
			}
		})
	}
}

func TestLoadViperKeepsValuesSetOnInstance(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("TRITHEMIUS_LOG_LEVEL", "warn")

	v := viper.New()
	v.Set("log.level", "debug")
	cfg, err := LoadViper(v, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Log.Level)
	}
	if v.GetInt("cipher.shift") != crypto.DefaultShift {
		t.Errorf("defaults not registered on the instance")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  mode: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("unexpected mode %s", cfg.Server.Mode)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"unknown key", "cipher:\n  rounds: 3\n", nil},
		{"shift out of range", "cipher:\n  shift: 32\n", nil},
		{"bad padding", "cipher:\n  padding: pkcs7\n", nil},
		{"bad format", "log:\n  format: xml\n", nil},
		{"bad env port", "", map[string]string{"TRITHEMIUS_PORT": "http"}},
		{"bad env max text", "", map[string]string{"TRITHEMIUS_MAX_TEXT": "0"}},
		{"bad env shift", "", map[string]string{"TRITHEMIUS_SHIFT": "eight"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.file), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
