package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/proofai-labs/proofai/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyHubURL is the config key holding the hub base URL override.
	KeyHubURL = "hub_url"

	// envAPIURL is the legacy environment override for the hub base URL.
	envAPIURL = "api_url"
)

// Dir returns the path to the ProofAI config directory (~/.proofai/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.proofai/config.yaml).
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

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// HubURL resolves the hub base URL. PROOFAI_API_URL wins over the hub_url
// config key, which wins over the branding default. A trailing slash is
// stripped so callers can append endpoint paths directly.
func HubURL() string {
	if v := viper.GetString(envAPIURL); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := viper.GetString(KeyHubURL); v != "" {
		return strings.TrimRight(v, "/")
	}
	return branding.HubURL()
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
