package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostprep/hostprep/internal/tracker"
)

const messageColumnWidth = 30

// RenderSummary produces the end-of-run table of task outcomes.
// Presentation only; nothing here feeds back into control flow.
func RenderSummary(styles Styles, records []tracker.Record, summary tracker.Summary) string {
	var b strings.Builder

	rule := strings.Repeat("═", 78)
	b.WriteString("\n")
	b.WriteString(styles.Title.Render("  Run Summary"))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(rule))
	b.WriteString("\n")

	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %-28s %-10s %-10s %s", "Task", "Outcome", "Duration", "Message")))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(strings.Repeat("─", 78)))
	b.WriteString("\n")

	for _, r := range records {
		fmt.Fprintf(&b, "  %-28s %-10s %-10s %s\n",
			truncate(r.Name, 28),
			renderStatus(styles, r.Status),
			renderDuration(r.Elapsed),
			truncate(r.Message, messageColumnWidth),
		)
	}

	b.WriteString(styles.Dim.Render(strings.Repeat("─", 78)))
	b.WriteString("\n")
	totals := fmt.Sprintf("  %d tasks | %s | %s | %s | total %s",
		summary.Total,
		styles.Success.Render(fmt.Sprintf("%d succeeded", summary.Success)),
		styles.Warn.Render(fmt.Sprintf("%d skipped", summary.Skipped)),
		styles.Error.Render(fmt.Sprintf("%d failed", summary.Failed)),
		renderDuration(summary.Elapsed),
	)
	b.WriteString(totals)
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(rule))
	b.WriteString("\n")

	return b.String()
}

// PlainSummary is the file-log rendition of the summary, one line per task.
func PlainSummary(records []tracker.Record, summary tracker.Summary) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "task=%s outcome=%s duration=%s message=%q\n",
			r.Name, r.Status, renderDuration(r.Elapsed), r.Message)
	}
	fmt.Fprintf(&b, "total=%d succeeded=%d skipped=%d failed=%d elapsed=%s",
		summary.Total, summary.Success, summary.Skipped, summary.Failed, renderDuration(summary.Elapsed))
	return b.String()
}

func renderStatus(styles Styles, s tracker.Status) string {
	switch s {
	case tracker.StatusSuccess:
		return styles.Success.Render("✓ ok")
	case tracker.StatusSkipped:
		return styles.Warn.Render("○ skip")
	case tracker.StatusFailed:
		return styles.Error.Render("✗ fail")
	default:
		return string(s)
	}
}

func renderDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(100 * time.Millisecond).String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
