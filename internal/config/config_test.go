package config_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazz-dev/netcheck/internal/config"
	"github.com/hazz-dev/netcheck/internal/journal"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.yml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Site != "https://google.com" {
		t.Errorf("unexpected default site %q", cfg.Site)
	}
	if cfg.Timeout.Duration != time.Second {
		t.Errorf("expected default timeout 1s, got %v", cfg.Timeout)
	}
	if cfg.Wait.Duration != 5*time.Minute {
		t.Errorf("expected default wait 5m, got %v", cfg.Wait)
	}
	if cfg.Journal.Path != "internet-check.log" {
		t.Errorf("unexpected default log file %q", cfg.Journal.Path)
	}
	if cfg.Journal.MaxSize != 10000 {
		t.Errorf("expected default max size 10000, got %d", cfg.Journal.MaxSize)
	}
	if cfg.Journal.Backups != 1 {
		t.Errorf("expected default backups 1, got %d", cfg.Journal.Backups)
	}
	if cfg.Iterate || cfg.Heartbeat {
		t.Error("iterate and heartbeat should default to off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeTemp(t, `
site: "http://example.com/generate_204"
timeout: "2500ms"
iterate: true
wait: "30s"
heartbeat: true
journal:
  path: "/var/log/netcheck.log"
  max_size: "64kB"
  backups: 3
  levels:
    debug: false
    information: true
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Site != "http://example.com/generate_204" {
		t.Errorf("unexpected site %q", cfg.Site)
	}
	if cfg.Timeout.Duration != 2500*time.Millisecond {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
	if !cfg.Iterate || !cfg.Heartbeat {
		t.Error("expected iterate and heartbeat to be on")
	}
	if cfg.Wait.Duration != 30*time.Second {
		t.Errorf("unexpected wait %v", cfg.Wait)
	}
	if cfg.Journal.Path != "/var/log/netcheck.log" {
		t.Errorf("unexpected journal path %q", cfg.Journal.Path)
	}
	if cfg.Journal.MaxSize != 64000 {
		t.Errorf("expected max size 64000, got %d", cfg.Journal.MaxSize)
	}
	if cfg.Journal.Backups != 3 {
		t.Errorf("expected 3 backups, got %d", cfg.Journal.Backups)
	}
	if enabled, ok := cfg.Journal.Levels["debug"]; !ok || enabled {
		t.Errorf("expected debug level disabled, got %v", cfg.Journal.Levels)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTemp(t, `
site: "https://example.com"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout.Duration != time.Second {
		t.Errorf("expected default timeout 1s, got %v", cfg.Timeout)
	}
	if cfg.Wait.Duration != 5*time.Minute {
		t.Errorf("expected default wait 5m, got %v", cfg.Wait)
	}
	if cfg.Journal.MaxSize != 10000 || cfg.Journal.Backups != 1 {
		t.Errorf("expected default rotation, got %d/%d", cfg.Journal.MaxSize, cfg.Journal.Backups)
	}
}

func TestLoad_ZeroBackupsKept(t *testing.T) {
	path := writeTemp(t, `
journal:
  max_size: "0"
  backups: 0
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Journal.Backups != 0 || cfg.Journal.MaxSize != 0 {
		t.Errorf("explicit zero values should be kept, got %d/%d", cfg.Journal.MaxSize, cfg.Journal.Backups)
	}
}

func TestLoad_ByteSizeInteger(t *testing.T) {
	path := writeTemp(t, `
journal:
  max_size: 20000
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Journal.MaxSize != 20000 {
		t.Errorf("expected 20000, got %d", cfg.Journal.MaxSize)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "site: [", "parsing config"},
		{"bad timeout", `timeout: "soon"`, "parsing config"},
		{"zero timeout", `timeout: "0s"`, "timeout must be positive"},
		{"bad wait", `wait: "later"`, "parsing config"},
		{"negative wait", `wait: "-1m"`, "wait must not be negative"},
		{"bad size", "journal:\n  max_size: \"lots\"", "parsing config"},
		{"negative backups", "journal:\n  backups: -1", "backups must not be negative"},
		{"unknown level", "journal:\n  levels:\n    verbose: true", "unknown level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeTemp(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/netcheck.yml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSetLevel_OverridesFileSpelling(t *testing.T) {
	cfg := config.Default()
	cfg.Journal.Levels = map[string]bool{"information": true}

	cfg.SetLevel(journal.LevelInformation, false)

	if len(cfg.Journal.Levels) != 1 {
		t.Fatalf("expected a single information entry, got %v", cfg.Journal.Levels)
	}
	if cfg.Journal.Levels["INFO"] {
		t.Errorf("expected information disabled, got %v", cfg.Journal.Levels)
	}
}

func TestJournalOptions(t *testing.T) {
	cfg := config.Default()
	cfg.SetLevel(journal.LevelDebug, false)

	opts, err := cfg.JournalOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// one level option plus max bytes and backup count
	if len(opts) != 3 {
		t.Errorf("expected 3 options, got %d", len(opts))
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var got struct {
		Timeout config.Duration `yaml:"timeout"`
	}
	if err := yaml.Unmarshal([]byte(`timeout: "750ms"`), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Timeout.Duration != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", got.Timeout)
	}
}
