// Package config handles pugltool configuration using Viper
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the tool configuration
type Config struct {
	// Window defaults for opened views
	Window WindowConfig `mapstructure:"window"`

	// Driver selection
	Driver DriverConfig `mapstructure:"driver"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`

	// Named window presets
	Presets []PresetConfig `mapstructure:"presets"`
}

// WindowConfig contains the defaults applied to views the tool opens
type WindowConfig struct {
	Title     string `mapstructure:"title"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Resizable bool   `mapstructure:"resizable"`
	KeyRepeat bool   `mapstructure:"key_repeat"`
	ClassName string `mapstructure:"class_name"`
}

// DriverConfig selects and locates the native driver
type DriverConfig struct {
	Name        string `mapstructure:"name"`         // "", "x11" or "mem"
	LibraryPath string `mapstructure:"library_path"` // explicit shared library path
	Backend     string `mapstructure:"backend"`      // "cairo" or "stub"
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides PUGL_LOG_LEVEL
}

// PresetConfig is a named window geometry for quick opening
type PresetConfig struct {
	Name   string `mapstructure:"name"`
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Window: WindowConfig{
			Title:     "pugltool",
			Width:     640,
			Height:    480,
			Resizable: true,
			KeyRepeat: false,
			ClassName: "pugltool",
		},
		Driver: DriverConfig{
			Name:        "",
			LibraryPath: "",
			Backend:     "cairo",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
		Presets: []PresetConfig{},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("pugltool")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pugltool"))
		}
		viper.AddConfigPath(".")
	}

	// Set defaults field by field so file values merge over them
	viper.SetDefault("window.title", DefaultConfig.Window.Title)
	viper.SetDefault("window.width", DefaultConfig.Window.Width)
	viper.SetDefault("window.height", DefaultConfig.Window.Height)
	viper.SetDefault("window.resizable", DefaultConfig.Window.Resizable)
	viper.SetDefault("window.key_repeat", DefaultConfig.Window.KeyRepeat)
	viper.SetDefault("window.class_name", DefaultConfig.Window.ClassName)

	viper.SetDefault("driver.name", DefaultConfig.Driver.Name)
	viper.SetDefault("driver.library_path", DefaultConfig.Driver.LibraryPath)
	viper.SetDefault("driver.backend", DefaultConfig.Driver.Backend)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	viper.SetDefault("presets", DefaultConfig.Presets)

	if err := viper.ReadInConfig(); err != nil {
		// An explicitly pointed-at file that does not exist yet is not an
		// error either, the init command writes it later
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "pugltool.toml")
	}

	return filepath.Join(home, ".config", "pugltool", "pugltool.toml")
}

// UpdateWindow updates the window defaults
func UpdateWindow(windowCfg WindowConfig) error {
	// Dotted keys keep the written file on the snake_case names
	// Unmarshal expects
	viper.Set("window.title", windowCfg.Title)
	viper.Set("window.width", windowCfg.Width)
	viper.Set("window.height", windowCfg.Height)
	viper.Set("window.resizable", windowCfg.Resizable)
	viper.Set("window.key_repeat", windowCfg.KeyRepeat)
	viper.Set("window.class_name", windowCfg.ClassName)
	Get().Window = windowCfg
	return Save()
}

// UpdateDriver updates the driver selection
func UpdateDriver(driverCfg DriverConfig) error {
	viper.Set("driver.name", driverCfg.Name)
	viper.Set("driver.library_path", driverCfg.LibraryPath)
	viper.Set("driver.backend", driverCfg.Backend)
	Get().Driver = driverCfg
	return Save()
}

// AddPreset adds or replaces a named window preset
func AddPreset(preset PresetConfig) error {
	cfg := Get()

	for i, p := range cfg.Presets {
		if p.Name == preset.Name {
			cfg.Presets[i] = preset
			viper.Set("presets", cfg.Presets)
			return Save()
		}
	}

	cfg.Presets = append(cfg.Presets, preset)
	viper.Set("presets", cfg.Presets)
	return Save()
}

// RemovePreset removes a preset by name
func RemovePreset(name string) error {
	cfg := Get()

	for i, p := range cfg.Presets {
		if p.Name == name {
			cfg.Presets = append(cfg.Presets[:i], cfg.Presets[i+1:]...)
			viper.Set("presets", cfg.Presets)
			return Save()
		}
	}

	return fmt.Errorf("preset %s not found", name)
}

// GetPreset returns a preset by name
func GetPreset(name string) (*PresetConfig, error) {
	cfg := Get()

	for _, p := range cfg.Presets {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("preset %s not found", name)
}

// ListPresets returns all configured presets
func ListPresets() []PresetConfig {
	return Get().Presets
}
