package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

// clearEnv isolates a test from the caller's environment and from any .env
// in the package directory.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "METRICS_ENABLED", "METRICS_PATH"} {
		t.Setenv(k, "")
	}
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("addr: got %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("shutdown_timeout: got %v, want %v", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log: got %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics: got %+v", cfg.Metrics)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("addr: got %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `server:
  addr: "127.0.0.1:8081"
  read_timeout: 3s
log:
  level: debug
  format: text
metrics:
  enabled: false
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8081" {
		t.Errorf("addr: got %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("read_timeout: got %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("write_timeout: got %v, want default", cfg.Server.WriteTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log: got %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics.enabled: got true, want false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `log:
  level: debug
`)
	t.Setenv("API_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr: got %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level: got %q, want warn", cfg.Log.Level)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics.enabled: got true, want false")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even to "".
	os.Unsetenv("LOG_FORMAT")
	if err := os.WriteFile(".env", []byte("LOG_FORMAT=text\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("format: got %q, want text", cfg.Log.Format)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "bad level", yaml: "log:\n  level: loud\n"},
		{name: "bad format", yaml: "log:\n  format: xml\n"},
		{name: "bad metrics path", yaml: "metrics:\n  path: metrics\n"},
		{name: "negative timeout", yaml: "server:\n  read_timeout: -1s\n"},
		{name: "bad yaml", yaml: "server: [\n"},
		{name: "bad bool env", yaml: "", env: map[string]string{"METRICS_ENABLED": "maybe"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestWatch_Reload(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "log:\n  level: info\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 16)
	errc := make(chan error, 1)
	go func() { errc <- Watch(ctx, p, func(c *Config) { got <- c }) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(p, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	// A write may surface as several events (truncate, then data), so wait
	// for the one carrying the new level.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-got:
			reloaded = c.Log.Level == "debug"
		case <-deadline:
			t.Fatal("no reload with level debug observed")
		}
	}

	cancel()
	if err := <-errc; err != nil {
		t.Errorf("Watch: %v", err)
	}
}
