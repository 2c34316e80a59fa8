// Package main is the entry point for the hostprep CLI.
//
// hostprep turns a freshly imported Arch Linux WSL instance into a ready
// development machine: package mirrors, system update, user account, shell
// environment, and tooling, driven by an interactive task menu.
//
// Commands: setup, tasks, init, version.
//
// For detailed usage information, run:
//
//	hostprep --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hostprep/hostprep/cmd/hostprep/commands"
	"github.com/hostprep/hostprep/internal/provision"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, provision.ErrCancelled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
