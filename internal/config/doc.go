// Package config manages user-level settings stored at ~/.proofai/config.yaml.
// It provides functions to load, read, and write configuration keys and
// resolves the hub base URL from the environment, the config file, or the
// built-in default, in that order.
package config
