package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"dropzone/pkg/types"

	"gopkg.in/yaml.v3"
)

// DefaultExtensionPattern matches a trailing dot-extension in a file
// name, case-insensitively. It is applied when no pattern is configured.
const DefaultExtensionPattern = `(?i)\.[0-9a-z]+$`

// DefaultLabelText is the accessible label used when none is configured.
const DefaultLabelText = "Drag and drop files here or click to upload"

// Config represents the application configuration structure.
// It defines the accept list, component settings, and watch mode
// parameters for directory drop zones.
type Config struct {
	Accept struct {
		Types   []string `yaml:"types"`   // Permitted MIME types, MIME wildcards and ".ext" entries
		Pattern string   `yaml:"pattern"` // Regular expression extracting the extension from a file name
	} `yaml:"accept"`
	Settings struct {
		LabelText           string `yaml:"label_text"`           // Accessible label for the drop target
		Multiple            bool   `yaml:"multiple"`             // Allow selecting more than one file
		Disabled            bool   `yaml:"disabled"`             // Freeze the component
		Name                string `yaml:"name"`                 // Name forwarded to the native input
		Debug               bool   `yaml:"debug"`                // Enable debug logging
		EnableNotifications bool   `yaml:"enable_notifications"` // Show desktop notifications in the GUI
	} `yaml:"settings"`
	Directories struct {
		Default string   `yaml:"default"` // Default directory for the TUI preview
		Watch   []string `yaml:"watch"`   // Directories treated as filesystem drop zones
	} `yaml:"directories"`
	WatchMode struct {
		Enabled  bool `yaml:"enabled"`  // Enable the watch daemon
		Interval int  `yaml:"interval"` // Poll interval in seconds for status reporting
	} `yaml:"watch_mode"`
}

// LoadConfig loads configuration from the default location
// (~/.config/dropzone/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "dropzone", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if len(tempCfg.Accept.Types) > 0 {
		cfg.Accept.Types = tempCfg.Accept.Types
	}
	if tempCfg.Accept.Pattern != "" {
		cfg.Accept.Pattern = tempCfg.Accept.Pattern
	}

	if tempCfg.Settings.LabelText != "" {
		cfg.Settings.LabelText = tempCfg.Settings.LabelText
	}
	cfg.Settings.Multiple = tempCfg.Settings.Multiple
	cfg.Settings.Disabled = tempCfg.Settings.Disabled
	cfg.Settings.Debug = tempCfg.Settings.Debug
	cfg.Settings.EnableNotifications = tempCfg.Settings.EnableNotifications
	if tempCfg.Settings.Name != "" {
		cfg.Settings.Name = tempCfg.Settings.Name
	}

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	if len(tempCfg.Directories.Watch) > 0 {
		cfg.Directories.Watch = tempCfg.Directories.Watch
	}

	cfg.WatchMode.Enabled = tempCfg.WatchMode.Enabled
	if tempCfg.WatchMode.Interval > 0 {
		cfg.WatchMode.Interval = tempCfg.WatchMode.Interval
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// Empty accept list means every file is accepted
	cfg.Accept.Types = []string{}
	cfg.Accept.Pattern = DefaultExtensionPattern

	cfg.Settings.LabelText = DefaultLabelText
	cfg.Settings.Multiple = true
	cfg.Settings.Disabled = false
	cfg.Settings.Name = ""
	cfg.Settings.Debug = false
	cfg.Settings.EnableNotifications = false

	cfg.Directories.Default = "." // Current directory by default
	cfg.Directories.Watch = []string{}

	cfg.WatchMode.Enabled = false
	cfg.WatchMode.Interval = 5 // 5 seconds default interval

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// The pattern must be a valid regular expression
	if c.Accept.Pattern != "" {
		if _, err := regexp.Compile(c.Accept.Pattern); err != nil {
			return fmt.Errorf("invalid extension pattern %q: %w", c.Accept.Pattern, err)
		}
	}

	// Accept entries must be non-empty
	for i, entry := range c.Accept.Types {
		if entry == "" {
			return fmt.Errorf("accept entry %d: empty entry", i)
		}
	}

	// The accessible label is required
	if c.Settings.LabelText == "" {
		return fmt.Errorf("label_text is required")
	}

	// Validate watch interval if watch mode is enabled
	if c.WatchMode.Enabled && c.WatchMode.Interval < 1 {
		return fmt.Errorf("watch interval must be >= 1 second")
	}

	return nil
}

// AcceptList returns the configured accept entries as a typed list.
func (c *Config) AcceptList() types.AcceptList {
	return types.AcceptList(c.Accept.Types)
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Accept.Types = []string{".png", "image/jpeg"}
	cfg.Settings.LabelText = "Drop test files"
	cfg.WatchMode.Interval = 1
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
