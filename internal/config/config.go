package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the namespace for environment overrides.
const EnvPrefix = "INKWELL_"

// ErrUnknownOption is returned for an option name no layer recognizes.
var ErrUnknownOption = errors.New("unknown option")

// ErrBadFormat is returned for settings files with an unsupported
// extension.
var ErrBadFormat = errors.New("unsupported settings format")

// Colors holds theme colors as hex strings. Empty means the terminal
// default.
type Colors struct {
	Foreground  string `toml:"foreground" yaml:"foreground"`
	Background  string `toml:"background" yaml:"background"`
	SelectionFg string `toml:"selection_fg" yaml:"selection_fg"`
	SelectionBg string `toml:"selection_bg" yaml:"selection_bg"`
}

// Config is the resolved editor configuration.
type Config struct {
	TabWidth     int    `toml:"tab_width" yaml:"tab_width"`
	ScrollStride int    `toml:"scroll_stride" yaml:"scroll_stride"`
	UndoLimit    int    `toml:"undo_limit" yaml:"undo_limit"`
	LogFile      string `toml:"log_file" yaml:"log_file"`
	Colors       Colors `toml:"colors" yaml:"colors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabWidth:     8,
		ScrollStride: 8,
		UndoLimit:    0, // unbounded
	}
}

// Load resolves the configuration: defaults, then the settings file,
// then environment overrides. An empty path searches the standard
// locations; a missing file at a searched location is not an error, a
// missing file at an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findSettings()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.normalize()
	return cfg, nil
}

// findSettings locates the default settings file, preferring TOML.
func findSettings() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// configDir returns the per-user configuration directory.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "inkwell")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "inkwell")
}

// loadFile unmarshals a settings file over cfg, picking the parser by
// extension.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrBadFormat)
	}
	return nil
}

// envMapping pairs each override variable with its option name.
var envMapping = map[string]string{
	EnvPrefix + "TAB_WIDTH":     "tab_width",
	EnvPrefix + "SCROLL_STRIDE": "scroll_stride",
	EnvPrefix + "UNDO_LIMIT":    "undo_limit",
	EnvPrefix + "LOG_FILE":      "log_file",
	EnvPrefix + "FOREGROUND":    "foreground",
	EnvPrefix + "BACKGROUND":    "background",
	EnvPrefix + "SELECTION_FG":  "selection_fg",
	EnvPrefix + "SELECTION_BG":  "selection_bg",
}

// applyEnv overlays INKWELL_* variables onto cfg.
func applyEnv(cfg *Config) error {
	for env, option := range envMapping {
		val, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := cfg.Set(option, val); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// Set assigns one option by name. Values may be strings or numbers;
// numeric options parse string values. Used by the environment layer
// and the init script's set().
func (c *Config) Set(option string, value any) error {
	switch option {
	case "tab_width":
		return setInt(&c.TabWidth, value)
	case "scroll_stride":
		return setInt(&c.ScrollStride, value)
	case "undo_limit":
		return setInt(&c.UndoLimit, value)
	case "log_file":
		return setString(&c.LogFile, value)
	case "foreground":
		return setString(&c.Colors.Foreground, value)
	case "background":
		return setString(&c.Colors.Background, value)
	case "selection_fg":
		return setString(&c.Colors.SelectionFg, value)
	case "selection_bg":
		return setString(&c.Colors.SelectionBg, value)
	default:
		return fmt.Errorf("%q: %w", option, ErrUnknownOption)
	}
}

func setInt(dst *int, value any) error {
	switch v := value.(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		*dst = int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		*dst = n
	default:
		return fmt.Errorf("not a number: %v", value)
	}
	return nil
}

func setString(dst *string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("not a string: %v", value)
	}
	*dst = s
	return nil
}

// normalize clamps out-of-range values back to sane ones.
func (c *Config) normalize() {
	if c.TabWidth < 1 {
		c.TabWidth = Default().TabWidth
	}
	if c.ScrollStride < 1 {
		c.ScrollStride = Default().ScrollStride
	}
	if c.UndoLimit < 0 {
		c.UndoLimit = 0
	}
}
