package config

// Default returns the shipped default configuration.
func Default() *Config {
	return &Config{
		LogFile: "/var/log/hostprep/setup.log",
		Retry: RetryConfig{
			Attempts:     3,
			DelaySeconds: 2,
		},
		NetworkCheck: NetworkCheckConfig{
			Host:           "archlinux.org",
			Port:           443,
			TimeoutSeconds: 3,
		},
		Mirrors: MirrorsConfig{
			Enabled:    false,
			Path:       "/etc/pacman.d/mirrorlist",
			BackupPath: "/etc/pacman.d/mirrorlist.backup",
		},
		Packages: PackagesConfig{
			Base: PackageSet{
				Names:        []string{"base-devel", "git", "curl", "wget", "zsh", "sudo"},
				AllowPartial: true,
			},
			Optional: PackageSet{
				Names:        []string{"fastfetch", "htop", "tree", "unzip", "man-db"},
				AllowPartial: true,
			},
			GitHubCLI: []string{"github-cli"},
		},
		Shell: ShellConfig{
			OMZInstallURL: "https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh",
			Plugins: map[string]string{
				"zsh-autosuggestions":     "https://github.com/zsh-users/zsh-autosuggestions",
				"zsh-syntax-highlighting": "https://github.com/zsh-users/zsh-syntax-highlighting",
			},
		},
		Installers: InstallersConfig{
			YayRepo:  "https://aur.archlinux.org/yay.git",
			CondaURL: "https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh",
		},
		Paths: PathsConfig{
			WSLConf:    "/etc/wsl.conf",
			Sudoers:    "/etc/sudoers",
			PacmanLock: "/var/lib/pacman/db.lck",
		},
	}
}

// StarterYAML is the template written by `hostprep init`.
const StarterYAML = `# hostprep configuration
#
# Review before running: sudo hostprep setup

# File-backed log of every run.
log_file: /var/log/hostprep/setup.log

# Optional HTTP(S) proxy exported to every command.
proxy: ""

# Retry policy for transient (network / command) failures.
retry:
  attempts: 3
  delay_seconds: 2

# Reachability probe target used before network-bound tasks.
network_check:
  host: archlinux.org
  port: 443
  timeout_seconds: 3

# Custom pacman mirrors. Disabled by default.
mirrors:
  enabled: false
  servers: []
  # servers:
  #   - https://mirrors.kernel.org/archlinux/$repo/os/$arch

packages:
  base:
    names: [base-devel, git, curl, wget, zsh, sudo]
    allow_partial: true
  optional:
    names: [fastfetch, htop, tree, unzip, man-db]
    allow_partial: true
  github_cli: [github-cli]

shell:
  omz_install_url: https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh
  plugins:
    zsh-autosuggestions: https://github.com/zsh-users/zsh-autosuggestions
    zsh-syntax-highlighting: https://github.com/zsh-users/zsh-syntax-highlighting

installers:
  yay_repo: https://aur.archlinux.org/yay.git
  conda_url: https://repo.anaconda.com/miniconda/Miniconda3-latest-Linux-x86_64.sh
`
