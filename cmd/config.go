package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the application settings, read from an optional YAML file and
// overridden by command line flags.
type config struct {
	DataDir  string `yaml:"data_dir"`
	Currency string `yaml:"currency"`
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() config {
	return config{
		DataDir:  defaultDataDir(),
		Currency: "USD",
		LogLevel: "warn",
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".credittrail"
	}
	return filepath.Join(home, ".credittrail")
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".credittrail.yaml")
}

// loadConfig reads the YAML config file if present and applies flag
// overrides. A missing file is not an error.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path := *configFile
	if path == "" {
		path = defaultConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no config file, defaults apply.
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}
