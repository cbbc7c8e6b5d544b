// Package config stores user settings: the display labels for the two GPU
// profiles and the default preference applied by add operations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dannyvoid/gpu-preference/internal/branding"
	"github.com/dannyvoid/gpu-preference/internal/store"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyLabelPowerSaving     = "label_power_saving"
	KeyLabelHighPerformance = "label_high_performance"
	KeyDefaultGPU           = "default_gpu"
)

// Dir returns the path to the config directory (~/.gpuprefs/). The
// GPUPREFS_CONFIG_DIR environment variable overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.gpuprefs/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLabelPowerSaving, "Power Saving")
	viper.SetDefault(KeyLabelHighPerformance, "High Performance")
	viper.SetDefault(KeyDefaultGPU, "performance")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Label returns the configured display label for a preference.
func Label(p store.Preference) string {
	if p == store.HighPerformance {
		return Get(KeyLabelHighPerformance)
	}
	return Get(KeyLabelPowerSaving)
}

// DefaultPreference returns the preference add operations apply when no
// explicit choice is given. Unrecognized configured values fall back to
// high performance, the tool's shipped default.
func DefaultPreference() store.Preference {
	if p, err := store.ParsePreference(Get(KeyDefaultGPU)); err == nil {
		return p
	}
	return store.HighPerformance
}
