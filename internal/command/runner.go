package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/hostprep/hostprep/internal/retry"
)

// Result holds the outcome of a single command execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error reports a checked command that exited non-zero.
type Error struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("command %q exited with code %d", Mask(e.Command), e.ExitCode)
	}
	return fmt.Sprintf("command %q exited with code %d: %s", Mask(e.Command), e.ExitCode, stderr)
}

// Options configures a single execution.
type Options struct {
	// User runs the command under this identity via su instead of the
	// invoking (elevated) identity.
	User string

	// Check converts a non-zero exit into an *Error. Enabled by default.
	Check bool

	// Mask redacts credentials from the command text before logging.
	// Enabled by default.
	Mask bool
}

// Option mutates execution options.
type Option func(*Options)

// AsUser runs the command under the given identity.
func AsUser(name string) Option {
	return func(o *Options) { o.User = name }
}

// NoCheck reports a non-zero exit as a normal result for the caller to inspect.
func NoCheck() Option {
	return func(o *Options) { o.Check = false }
}

// Unmasked logs the command text verbatim. Only for commands known to carry
// no credentials.
func Unmasked() Option {
	return func(o *Options) { o.Mask = false }
}

// Runner is the command-execution primitive consumed by tasks.
type Runner interface {
	Run(ctx context.Context, command string, opts ...Option) (*Result, error)
}

// ShellRunner executes commands through the system shell.
type ShellRunner struct {
	proxy    string
	attempts int
	delay    time.Duration
	log      logr.Logger
}

// RunnerConfig configures a ShellRunner.
type RunnerConfig struct {
	// Proxy, when set, is exported as http(s)_proxy for every command.
	Proxy string

	// Attempts and Delay bound the retry of checked commands.
	Attempts int
	Delay    time.Duration
}

// NewShellRunner creates a shell-backed Runner.
func NewShellRunner(cfg RunnerConfig, log logr.Logger) *ShellRunner {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 2 * time.Second
	}
	return &ShellRunner{
		proxy:    cfg.Proxy,
		attempts: cfg.Attempts,
		delay:    cfg.Delay,
		log:      log,
	}
}

// Run executes the command. Checked commands are retried on non-zero exit;
// unchecked commands run exactly once and report their exit code in the
// result. The retry granularity is per command, matching every call site.
func (r *ShellRunner) Run(ctx context.Context, cmdText string, opts ...Option) (*Result, error) {
	options := Options{Check: true, Mask: true}
	for _, opt := range opts {
		opt(&options)
	}

	logCmd := cmdText
	if options.Mask {
		logCmd = Mask(cmdText)
	}
	r.log.V(1).Info("executing command", "command", logCmd, "user", options.User)

	if !options.Check {
		return r.runOnce(ctx, cmdText, options)
	}

	var result *Result
	err := retry.Do(ctx, r.log, func() error {
		res, err := r.runOnce(ctx, cmdText, options)
		if err != nil {
			return err
		}
		result = res
		if res.ExitCode != 0 {
			return &Error{Command: cmdText, ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
		return nil
	}, retry.WithAttempts(r.attempts), retry.WithDelay(r.delay))
	if err != nil {
		return result, err
	}
	return result, nil
}

// runOnce performs a single execution without retry or check handling.
func (r *ShellRunner) runOnce(ctx context.Context, cmdText string, options Options) (*Result, error) {
	var cmd *exec.Cmd
	if options.User != "" {
		// #nosec G204 - the identity comes from validated operator input
		cmd = exec.CommandContext(ctx, "su", "-", options.User, "-c", cmdText)
	} else {
		// #nosec G204 - commands are assembled from internal config
		cmd = exec.CommandContext(ctx, "sh", "-c", cmdText)
	}

	cmd.Env = r.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("failed to start command: %w", err)
		}
	}
	return &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// environ returns the process environment with proxy variables injected.
func (r *ShellRunner) environ() []string {
	env := os.Environ()
	if r.proxy == "" {
		return env
	}
	for _, key := range []string{"http_proxy", "https_proxy", "HTTP_PROXY", "HTTPS_PROXY"} {
		env = append(env, key+"="+r.proxy)
	}
	return env
}
