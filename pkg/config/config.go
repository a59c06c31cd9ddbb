package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerURL             string `yaml:"server_url"`
	PollIntervalSeconds   int    `yaml:"poll_interval_seconds"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`

	// UI Settings
	ColorTheme     string `yaml:"color_theme"`
	TableWidth     int    `yaml:"table_width"`
	ToastSeconds   int    `yaml:"toast_seconds"`
	CountUpMillis  int    `yaml:"count_up_millis"`
	ShowKPIHeader  bool   `yaml:"show_kpi_header"`
	HighlightJSON  bool   `yaml:"highlight_json"`

	// Export Settings
	ExportFile string `yaml:"export_file"`

	// Session Settings
	SessionDir string `yaml:"session_dir"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:             "http://127.0.0.1:5000",
		PollIntervalSeconds:   30,
		RequestTimeoutSeconds: 0,
		ColorTheme:            "auto",
		TableWidth:            0,
		ToastSeconds:          3,
		CountUpMillis:         1500,
		ShowKPIHeader:         true,
		HighlightJSON:         true,
		ExportFile:            "dashboard.html",
		SessionDir:            "",
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "hostsdash", "config.yml")
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://127.0.0.1:5000"
	}
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 30
	}
	if cfg.RequestTimeoutSeconds < 0 {
		cfg.RequestTimeoutSeconds = 0
	}
	if cfg.ToastSeconds <= 0 {
		cfg.ToastSeconds = 3
	}
	if cfg.CountUpMillis <= 0 {
		cfg.CountUpMillis = 1500
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = "dashboard.html"
	}
	if cfg.SessionDir == "" {
		cfg.SessionDir = filepath.Dir(path)
	}
	if !isValidTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidTheme checks if the color theme is valid
func isValidTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
