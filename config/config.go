package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"commandsite/log"

	"github.com/BurntSushi/toml"
)

const (
	ConfigFileTOML = "config.toml"
	ConfigFileJSON = "config.json"
)

// ThemePreference is the platform colour scheme preference.
type ThemePreference string

const (
	// ThemeAuto asks the terminal for its background colour.
	ThemeAuto  ThemePreference = "auto"
	ThemeDark  ThemePreference = "dark"
	ThemeLight ThemePreference = "light"
)

// Config represents the application configuration.
type Config struct {
	// DataSource is a path or http(s) URL of the commands document. Empty means
	// the sample document compiled into the binary.
	DataSource string `toml:"data_source" json:"data_source"`
	// FetchTimeout bounds the single document load.
	FetchTimeout Duration `toml:"fetch_timeout" json:"fetch_timeout"`
	// FAQSource is a path to a JSON list of {question, answer}. Empty means built in.
	FAQSource string `toml:"faq_source" json:"faq_source"`

	UI   UIConfig   `toml:"ui" json:"ui"`
	HTTP HTTPConfig `toml:"http" json:"http"`
	Log  LogConfig  `toml:"log" json:"log"`

	// path is the file this config was read from, if any
	path string
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Theme ThemePreference `toml:"theme" json:"theme"`
	// ScrollTopThreshold is the number of lines scrolled before the
	// scroll-to-top button shows.
	ScrollTopThreshold int `toml:"scroll_top_threshold" json:"scroll_top_threshold"`
	// FrameRate drives the cursor follower and transitions.
	FrameRate int `toml:"frame_rate" json:"frame_rate"`
	// CursorFollower can be turned off on slow terminals.
	CursorFollower bool `toml:"cursor_follower" json:"cursor_follower"`
}

// HTTPConfig holds settings for the serve command.
type HTTPConfig struct {
	Addr string `toml:"addr" json:"addr"`
}

// LogConfig mirrors log.LogConfig in file form.
type LogConfig struct {
	Enabled  bool   `toml:"enabled" json:"enabled"`
	Dir      string `toml:"dir" json:"dir"`
	MaxSize  int    `toml:"max_size" json:"max_size"`
	MaxFiles int    `toml:"max_files" json:"max_files"`
	MaxAge   int    `toml:"max_age" json:"max_age"`
	Compress bool   `toml:"compress" json:"compress"`
}

// Duration is a time.Duration that reads "5s" style strings from TOML and JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DataSource:   "",
		FetchTimeout: Duration{10 * time.Second},
		FAQSource:    "",
		UI: UIConfig{
			Theme:              ThemeAuto,
			ScrollTopThreshold: 20,
			FrameRate:          60,
			CursorFollower:     true,
		},
		HTTP: HTTPConfig{
			Addr: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Enabled:  true,
			MaxSize:  10,
			MaxFiles: 5,
			MaxAge:   30,
			Compress: true,
		},
	}
}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	return log.GetConfigDir()
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// LogSettings converts the file settings into the log package's form.
func (c *Config) LogSettings() *log.LogConfig {
	return &log.LogConfig{
		Enabled:  c.Log.Enabled,
		Dir:      c.Log.Dir,
		MaxSize:  c.Log.MaxSize,
		MaxFiles: c.Log.MaxFiles,
		MaxAge:   c.Log.MaxAge,
		Compress: c.Log.Compress,
	}
}

// LoadConfig loads the config from the config directory. A TOML file wins over
// a JSON one. If neither exists the defaults are used. Environment overrides are
// applied last.
func LoadConfig() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		log.WarningLog.Printf("failed to get config directory: %v", err)
		cfg := DefaultConfig()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}

	for _, name := range []string{ConfigFileTOML, ConfigFileJSON} {
		path := filepath.Join(configDir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFromPath(path)
		}
	}

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	return cfg, cfg.Validate()
}

// LoadFromPath reads a single config file. Fields absent from the file keep
// their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.path = path
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies COMMANDSITE_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("COMMANDSITE_DATA"); v != "" {
		c.DataSource = v
	}
	if v := os.Getenv("COMMANDSITE_FAQ"); v != "" {
		c.FAQSource = v
	}
	if v := os.Getenv("COMMANDSITE_THEME"); v != "" {
		c.UI.Theme = ThemePreference(strings.ToLower(v))
	}
	if v := os.Getenv("COMMANDSITE_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv("COMMANDSITE_FRAME_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.FrameRate = n
		} else {
			log.WarningLog.Printf("ignoring COMMANDSITE_FRAME_RATE=%q: %v", v, err)
		}
	}
	if v := os.Getenv("COMMANDSITE_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
}

// Validate checks the values that would otherwise break the UI.
func (c *Config) Validate() error {
	var errs []error
	switch c.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("ui.theme must be auto, dark or light, got %q", c.UI.Theme))
	}
	if c.UI.ScrollTopThreshold < 0 {
		errs = append(errs, fmt.Errorf("ui.scroll_top_threshold must not be negative, got %d", c.UI.ScrollTopThreshold))
	}
	if c.UI.FrameRate < 1 || c.UI.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("ui.frame_rate must be between 1 and 240, got %d", c.UI.FrameRate))
	}
	if c.FetchTimeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout.Duration))
	}
	return errors.Join(errs...)
}
