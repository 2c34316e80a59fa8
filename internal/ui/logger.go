package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Logger writes every event to the interactive console and appends a plain,
// timestamped copy to the file-backed log. Command text must be masked
// before it reaches any Logger method.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	file   *os.File // nil when the log file could not be opened
	styles Styles
}

// NewLogger opens (creating parent directories as needed) the file sink and
// returns the logger. A file-open failure degrades to console-only logging
// with a warning rather than aborting the run.
func NewLogger(logPath string, out io.Writer, styles Styles) *Logger {
	l := &Logger{out: out, styles: styles}

	if logPath == "" {
		return l
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		fmt.Fprintln(out, styles.Warn.Render(fmt.Sprintf("warning: cannot create log directory: %v", err)))
		return l
	}
	// #nosec G304 - the path comes from validated configuration
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		fmt.Fprintln(out, styles.Warn.Render(fmt.Sprintf("warning: cannot open log file %s: %v", logPath, err)))
		return l
	}
	l.file = f
	return l
}

// Close releases the file sink.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// Logr returns a structured logger whose output lands in the file sink and,
// dimmed, on the console. Used by the retry and command layers.
func (l *Logger) Logr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		line := strings.TrimSpace(prefix + " " + args)
		l.emit(l.styles.Dim.Render(line), "DEBUG", line)
	}, funcr.Options{})
}

// Info prints a plain informational line.
func (l *Logger) Info(msg string) {
	l.emit(msg, "INFO", msg)
}

// Success prints a completed-work line.
func (l *Logger) Success(msg string) {
	l.emit(l.styles.Success.Render("✓ "+msg), "INFO", msg)
}

// Warn prints a warning line.
func (l *Logger) Warn(msg string) {
	l.emit(l.styles.Warn.Render("⚠ "+msg), "WARNING", msg)
}

// Error prints a failure line.
func (l *Logger) Error(msg string) {
	l.emit(l.styles.Error.Render("✗ "+msg), "ERROR", msg)
}

// Section prints a banner separating one task's output from the next.
func (l *Logger) Section(title string) {
	rule := strings.Repeat("─", 50)
	console := "\n" + l.styles.Section.Render(rule) + "\n" + l.styles.Section.Render("  "+title) + "\n" + l.styles.Section.Render(rule)
	l.emit(console, "INFO", "=== "+title+" ===")
}

// Print writes a pre-styled console block and a plain copy to the file log.
func (l *Logger) Print(console, plain string) {
	l.emit(console, "INFO", plain)
}

// emit writes the styled text to the console and the plain text, stamped,
// to the file sink.
func (l *Logger) emit(console, level, plain string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.out, console)
	if l.file != nil {
		stamp := time.Now().Format("2006-01-02 15:04:05")
		fmt.Fprintf(l.file, "%s [%s] %s\n", stamp, level, plain)
	}
}
