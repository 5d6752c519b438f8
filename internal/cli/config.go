package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// accessTokenEnv overrides the stored token when set, so CI jobs can run
// without a config file on disk.
const accessTokenEnv = "ESA_ACCESS_TOKEN"

// defaultTeamEnv overrides the stored default team when set.
const defaultTeamEnv = "ESA_TEAM"

// Config represents the configuration for the esa CLI.
// It contains the API access token and the default team commands act on.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// AccessToken is the personal access token for the esa API
	AccessToken string `yaml:"access_token" validate:"required"`
	// DefaultTeam is the team used when --team is not given
	DefaultTeam string `yaml:"default_team"`
}

var config *Config

var validate = validator.New()

// GetDefaultConfigPath returns the default path for the config file.
// It uses the OS-specific config directory (e.g., ~/.config/esa on Linux).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "esa", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file, falling
// back to the default location. Environment variables (optionally read
// from a .env file in the working directory) override stored values.
func LoadConfig(file string) error {
	// A missing .env is fine; explicit env vars still apply.
	godotenv.Load()

	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	var c Config
	yamlStr, err := os.ReadFile(file)
	if err == nil {
		if err := yaml.Unmarshal(yamlStr, &c); err != nil {
			return fmt.Errorf("unable to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	if token := os.Getenv(accessTokenEnv); token != "" {
		c.AccessToken = token
	}
	if team := os.Getenv(defaultTeamEnv); team != "" {
		c.DefaultTeam = team
	}

	if err := validate.Struct(&c); err != nil {
		return fmt.Errorf("access token is required: run 'esa login' or set %s", accessTokenEnv)
	}

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// WriteConfig writes the configuration to the specified file.
// If no file is specified, it uses the default config location.
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	// The file holds a credential; keep it private.
	if err := os.WriteFile(file, yamlStr, os.FileMode(0600)); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}
