// Package config loads and validates the hostprep configuration file.
package config

import "time"

// Config holds the application configuration.
type Config struct {
	// LogFile is the file-backed log sink for the run.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`

	// Proxy, when set, is exported as http(s)_proxy for every command.
	Proxy string `mapstructure:"proxy" yaml:"proxy"`

	Retry        RetryConfig        `mapstructure:"retry" yaml:"retry"`
	NetworkCheck NetworkCheckConfig `mapstructure:"network_check" yaml:"network_check"`
	Mirrors      MirrorsConfig      `mapstructure:"mirrors" yaml:"mirrors"`
	Packages     PackagesConfig     `mapstructure:"packages" yaml:"packages"`
	Shell        ShellConfig        `mapstructure:"shell" yaml:"shell"`
	Installers   InstallersConfig   `mapstructure:"installers" yaml:"installers"`
	Paths        PathsConfig        `mapstructure:"paths" yaml:"paths"`
}

// RetryConfig bounds the retry applied to checked commands and other
// network-touching operations.
type RetryConfig struct {
	Attempts     int `mapstructure:"attempts" yaml:"attempts"`
	DelaySeconds int `mapstructure:"delay_seconds" yaml:"delay_seconds"`
}

// Delay returns the configured delay as a duration.
func (r RetryConfig) Delay() time.Duration {
	return time.Duration(r.DelaySeconds) * time.Second
}

// NetworkCheckConfig configures the reachability probe run before
// network-bound tasks.
type NetworkCheckConfig struct {
	Host           string `mapstructure:"host" yaml:"host"`
	Port           int    `mapstructure:"port" yaml:"port"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout returns the probe timeout as a duration.
func (n NetworkCheckConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// MirrorsConfig configures the package mirror task.
type MirrorsConfig struct {
	Enabled    bool     `mapstructure:"enabled" yaml:"enabled"`
	Servers    []string `mapstructure:"servers" yaml:"servers"`
	Path       string   `mapstructure:"path" yaml:"path"`
	BackupPath string   `mapstructure:"backup_path" yaml:"backup_path"`
}

// PackageSet names a group of packages and its partial-failure policy.
type PackageSet struct {
	Names []string `mapstructure:"names" yaml:"names"`

	// AllowPartial makes per-item install failures a warning instead of
	// failing the whole task.
	AllowPartial bool `mapstructure:"allow_partial" yaml:"allow_partial"`
}

// PackagesConfig holds the package sets installed by the package tasks.
type PackagesConfig struct {
	Base      PackageSet `mapstructure:"base" yaml:"base"`
	Optional  PackageSet `mapstructure:"optional" yaml:"optional"`
	GitHubCLI []string   `mapstructure:"github_cli" yaml:"github_cli"`
}

// ShellConfig configures the shell environment tasks.
type ShellConfig struct {
	// OMZInstallURL is the Oh My Zsh installer script location.
	OMZInstallURL string `mapstructure:"omz_install_url" yaml:"omz_install_url"`

	// Plugins maps plugin name to git clone URL.
	Plugins map[string]string `mapstructure:"plugins" yaml:"plugins"`
}

// InstallersConfig holds third-party tool bootstrap sources.
type InstallersConfig struct {
	YayRepo  string `mapstructure:"yay_repo" yaml:"yay_repo"`
	CondaURL string `mapstructure:"conda_url" yaml:"conda_url"`
}

// PathsConfig holds host file locations, overridable for testing.
type PathsConfig struct {
	WSLConf    string `mapstructure:"wsl_conf" yaml:"wsl_conf"`
	Sudoers    string `mapstructure:"sudoers" yaml:"sudoers"`
	PacmanLock string `mapstructure:"pacman_lock" yaml:"pacman_lock"`
}
