package prettylog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigParsesFile(t *testing.T) {
	path := writeConfig(t, `
level = "debug"
modules = ["app", "svc::http"]
color = "never"
timezone = "UTC"
`)

	cfg, resolved, exists, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Level != "debug" || cfg.Color != "never" || cfg.Timezone != "UTC" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Modules) != 2 || cfg.Modules[0] != "app" {
		t.Errorf("unexpected modules: %v", cfg.Modules)
	}

	opts := cfg.Options()
	if opts.Level != LevelDebug || opts.Color != ColorNever {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Location != time.UTC {
		t.Errorf("expected UTC location, got %v", opts.Location)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PRETTY_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, _, exists, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if exists {
		t.Errorf("missing file reported as existing")
	}
	if cfg.Level != "info" || cfg.Color != "auto" || len(cfg.Modules) != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigEnvFallbackForLevel(t *testing.T) {
	t.Setenv("PRETTY_LOG_LEVEL", "trace")
	path := writeConfig(t, `modules = ["app"]`)

	cfg, _, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Level != "trace" {
		t.Errorf("env fallback ignored, level = %q", cfg.Level)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for _, contents := range []string{`level = "loud"`, `color = "rainbow"`} {
		path := writeConfig(t, contents)
		if _, _, _, err := LoadConfig(path); err == nil {
			t.Errorf("LoadConfig accepted %q", contents)
		}
	}
	path := writeConfig(t, `level = [1, 2]`)
	if _, _, _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig accepted malformed TOML")
	}
}

func TestConfigTimezoneResolution(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	if loc := cfg.Options().Location; loc != time.UTC {
		t.Errorf("unknown timezone should fall back to UTC, got %v", loc)
	}

	for _, name := range []string{"", "Local", "local"} {
		cfg := Config{Timezone: name}
		if loc := cfg.Options().Location; loc != time.Local {
			t.Errorf("timezone %q resolved to %v, want local", name, loc)
		}
	}
}

func TestConfigNormalizeTrimsModules(t *testing.T) {
	cfg := Config{Level: " INFO ", Modules: []string{" app ", "", "  "}}
	cfg.normalize()
	if cfg.Level != "info" {
		t.Errorf("level not normalized: %q", cfg.Level)
	}
	if len(cfg.Modules) != 1 || cfg.Modules[0] != "app" {
		t.Errorf("modules not normalized: %v", cfg.Modules)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := LoadConfig(target)
	if err != nil {
		t.Fatalf("LoadConfig on sample: %v", err)
	}
	if !exists {
		t.Errorf("sample file not found after CreateSample")
	}
	if cfg.Level != "info" || cfg.Color != "auto" {
		t.Errorf("sample defaults changed: %+v", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/logs")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "logs") {
		t.Errorf("ExpandPath(~/logs) = %q", got)
	}

	got, err = ExpandPath("relative/path")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, filepath.Join("relative", "path")) {
		t.Errorf("ExpandPath(relative/path) = %q", got)
	}
}
