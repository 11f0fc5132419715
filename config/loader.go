package config

import "fmt"

// Load builds the configuration with priority: flags > config file > defaults.
//
// configPath selects an explicit config file; when empty, standard
// locations are searched and defaults are used if none exists. Flag
// overrides are applied by the caller on the returned config before
// calling Validate.
func Load(configPath string) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. If no explicit -config path, try standard locations
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg = fileCfg
	}

	return cfg, nil
}
