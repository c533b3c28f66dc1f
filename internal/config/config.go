package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/uxsprint/boilerplate/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by the CLI.
const (
	KeyBaseDir    = "base_dir"
	KeyOutputRoot = "output_root"
	KeyLogLevel   = "log_level"
)

// Keys lists every setting key in display order.
var Keys = []string{KeyBaseDir, KeyOutputRoot, KeyLogLevel}

// Dir returns the path to the settings directory (~/.uxsprint/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file (~/.uxsprint/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyLogLevel, "warn")

	// Ignore error if the settings file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is one of the settings the CLI reads.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a key-value pair and saves the settings file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown setting %q (known: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
