package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tuner.Addr() != "127.0.0.1:12345" {
		t.Errorf("addr = %s", cfg.Tuner.Addr())
	}
	if cfg.Refresh.Interval != time.Second || cfg.Schedule.Format != "auto" || cfg.Log.Level != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load should not create the file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tuner:
  host: rig.local
  port: 4532
  timeout: 500ms
refresh:
  interval: 2s
  reload_cron: "0 * * * *"
schedule:
  format: ILG
  active_only: true
  target: Eu
log:
  level: DEBUG
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tuner.Addr() != "rig.local:4532" || cfg.Tuner.Timeout != 500*time.Millisecond {
		t.Errorf("tuner = %+v", cfg.Tuner)
	}
	if cfg.Refresh.Interval != 2*time.Second || cfg.Refresh.ReloadCron != "0 * * * *" {
		t.Errorf("refresh = %+v", cfg.Refresh)
	}
	if cfg.Schedule.Format != "ilg" || !cfg.Schedule.ActiveOnly || cfg.Schedule.Target != "Eu" {
		t.Errorf("schedule = %+v", cfg.Schedule)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "tuner:\n  port: 0\nschedule:\n  format: csv\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tuner.Host != "127.0.0.1" || cfg.Tuner.Port != 12345 {
		t.Errorf("tuner = %+v", cfg.Tuner)
	}
	if cfg.Schedule.Format != "auto" {
		t.Errorf("unknown format should fall back to auto, got %q", cfg.Schedule.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should fail")
	}
	if _, err := Load(writeConfig(t, "tuner: [not, a, map]\n")); err == nil {
		t.Error("malformed yaml should fail")
	}
}
