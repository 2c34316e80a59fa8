// Package command executes host shell commands for provisioning tasks.
//
// The [Runner] interface is the single command-execution primitive used by
// the task engine. The shell-backed implementation supports running as a
// different identity via su, injecting proxy environment variables, masking
// credentials before anything reaches the logs, and retrying checked
// commands on transient failure.
package command
