// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a rebrand is a one-file edit plus a rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	HubURL      string `yaml:"hub_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "proofai",
			DisplayName: "ProofAI",
			Description: "Package and upload agents, models, and datasets to the ProofAI hub",
			HomeDir:     ".proofai",
			EnvPrefix:   "PROOFAI",
			GoModule:    "github.com/proofai-labs/proofai",
			HubURL:      "http://localhost:3000",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "proofai").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ProofAI").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".proofai").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PROOFAI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Scaffolded agent stubs import the
// SDK package under this path.
func GoModule() string { load(); return defaults.GoModule }

// HubURL returns the default hub base URL used when no override is configured.
func HubURL() string { load(); return defaults.HubURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("API_URL") → "PROOFAI_API_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
