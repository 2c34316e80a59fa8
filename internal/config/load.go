package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 - the path comes from an operator-supplied flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if len(rawConfig) == 0 {
		return nil, fmt.Errorf("config file %s is empty", path)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the shipped defaults.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.LogFile == "" {
		cfg.LogFile = def.LogFile
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry.Attempts = def.Retry.Attempts
	}
	if cfg.Retry.DelaySeconds == 0 {
		cfg.Retry.DelaySeconds = def.Retry.DelaySeconds
	}
	if cfg.NetworkCheck.Host == "" {
		cfg.NetworkCheck.Host = def.NetworkCheck.Host
	}
	if cfg.NetworkCheck.Port == 0 {
		cfg.NetworkCheck.Port = def.NetworkCheck.Port
	}
	if cfg.NetworkCheck.TimeoutSeconds == 0 {
		cfg.NetworkCheck.TimeoutSeconds = def.NetworkCheck.TimeoutSeconds
	}
	if cfg.Mirrors.Path == "" {
		cfg.Mirrors.Path = def.Mirrors.Path
	}
	if cfg.Mirrors.BackupPath == "" {
		cfg.Mirrors.BackupPath = def.Mirrors.BackupPath
	}
	if len(cfg.Packages.GitHubCLI) == 0 {
		cfg.Packages.GitHubCLI = def.Packages.GitHubCLI
	}
	if cfg.Shell.OMZInstallURL == "" {
		cfg.Shell.OMZInstallURL = def.Shell.OMZInstallURL
	}
	if cfg.Installers.YayRepo == "" {
		cfg.Installers.YayRepo = def.Installers.YayRepo
	}
	if cfg.Installers.CondaURL == "" {
		cfg.Installers.CondaURL = def.Installers.CondaURL
	}
	if cfg.Paths.WSLConf == "" {
		cfg.Paths.WSLConf = def.Paths.WSLConf
	}
	if cfg.Paths.Sudoers == "" {
		cfg.Paths.Sudoers = def.Paths.Sudoers
	}
	if cfg.Paths.PacmanLock == "" {
		cfg.Paths.PacmanLock = def.Paths.PacmanLock
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Retry.Attempts < 1 {
		return fmt.Errorf("retry.attempts must be at least 1, got %d", c.Retry.Attempts)
	}
	if c.Retry.DelaySeconds < 0 {
		return fmt.Errorf("retry.delay_seconds must not be negative, got %d", c.Retry.DelaySeconds)
	}
	if c.NetworkCheck.Port < 1 || c.NetworkCheck.Port > 65535 {
		return fmt.Errorf("network_check.port must be in 1..65535, got %d", c.NetworkCheck.Port)
	}
	if c.Mirrors.Enabled && len(c.Mirrors.Servers) == 0 {
		return fmt.Errorf("mirrors.enabled is set but mirrors.servers is empty")
	}
	for name, url := range c.Shell.Plugins {
		if url == "" {
			return fmt.Errorf("shell.plugins[%s] has an empty clone URL", name)
		}
	}
	return nil
}
