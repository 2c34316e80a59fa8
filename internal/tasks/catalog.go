package tasks

// DefaultRegistry builds the standard task catalog. Registration is explicit
// and happens once at startup; the registry is immutable afterwards.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("mirrors", NewConfigureMirrors())
	r.MustRegister("update", NewUpdateSystem())
	r.MustRegister("base", NewInstallBasePackages())
	r.MustRegister("optional", NewInstallOptionalPackages())
	r.MustRegister("user", NewCreateUser())
	r.MustRegister("wsl", NewConfigureWSL())
	r.MustRegister("omz", NewInstallOhMyZsh())
	r.MustRegister("zsh-plugins", NewInstallZshPlugins())
	r.MustRegister("zshrc", NewConfigureZshrc())
	r.MustRegister("yay", NewInstallYay())
	r.MustRegister("conda", NewInstallConda())
	r.MustRegister("github", NewConfigureGitHub())
	return r
}
