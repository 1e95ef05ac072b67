package prettylog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds the file-backed logger settings. Every field is optional;
// zero values resolve to the documented defaults.
type Config struct {
	// Level is the minimum severity: trace, debug, info, warn, error, off.
	Level string `toml:"level"`
	// Modules lists origin prefixes to keep. Empty keeps everything.
	Modules []string `toml:"modules"`
	// Color is auto, always, or never.
	Color string `toml:"color"`
	// Timezone names the IANA location used for timestamps. Empty or
	// "Local" means local time; unresolvable names fall back to UTC.
	Timezone string `toml:"timezone"`
}

// DefaultConfig returns the repository defaults.
func DefaultConfig() Config {
	return Config{Level: "info", Color: "auto"}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/prettylog/config.toml")
}

// LoadConfig locates, parses, and validates a configuration file. A missing
// file yields the defaults, with the PRETTY_LOG_LEVEL environment variable
// consulted when no level is configured. The returned path is where the
// configuration was (or would be) read from.
func LoadConfig(path string) (*Config, string, bool, error) {
	cfg := DefaultConfig()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("prettylog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Level == "" {
		c.Level = strings.ToLower(strings.TrimSpace(os.Getenv("PRETTY_LOG_LEVEL")))
	}
	if c.Level == "" {
		c.Level = "info"
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = "auto"
	}

	c.Timezone = strings.TrimSpace(c.Timezone)

	modules := make([]string, 0, len(c.Modules))
	for _, module := range c.Modules {
		if module = strings.TrimSpace(module); module != "" {
			modules = append(modules, module)
		}
	}
	c.Modules = modules
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if _, err := ParseColorMode(c.Color); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into sink options. Timezone resolution
// failure falls back to UTC rather than erroring.
func (c *Config) Options() Options {
	level, _ := ParseLevel(c.Level)
	color, _ := ParseColorMode(c.Color)
	return Options{
		Level:    level,
		Modules:  append([]string(nil), c.Modules...),
		Color:    color,
		Location: c.location(),
	}
}

func (c *Config) location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExpandPath resolves a leading tilde against the current user's home
// directory and makes the result absolute.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return filepath.Abs(path)
}

// CreateSample writes the annotated sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
