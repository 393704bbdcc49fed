// Package cli implements the addonscan command-line interface.
//
// The scan command reads npm package documents, classifies them with
// [survey.Consumer] and writes the report. Supporting commands manage the
// HTTP response cache and show the effective exclusion list. The CLI is
// built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - scan: Survey packages from stdin or --input
//   - cache: Clear or locate the HTTP response cache
//   - exclusions: Print the names that are dropped before any lookup
//   - completion: Generate shell completion scripts
//
// # Logging
//
// Logs go to stderr alongside the survey diagnostics. --verbose (-v)
// switches to debug level and logs every classification, cache and HTTP
// event through the [observability] hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/addonscan/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// It logs at debug level: stderr at the default level carries only survey
// diagnostics and the summary line.
// Example output: "Surveyed 42 packages (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Debug Hooks
// =============================================================================

// logHooks forwards observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetSurveyHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnRecordStart(_ context.Context, name string) {}

func (h logHooks) OnRecordDone(_ context.Context, name, state string, d time.Duration) {
	h.logger.Debug("record", "name", name, "state", state, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnEnrichError(_ context.Context, name, stage string, err error) {
	h.logger.Debug("enrichment failed", "name", name, "stage", stage, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, namespace string) {
	h.logger.Debug("cache hit", "ns", namespace)
}

func (h logHooks) OnCacheMiss(_ context.Context, namespace string) {
	h.logger.Debug("cache miss", "ns", namespace)
}

func (h logHooks) OnCacheSet(_ context.Context, namespace string, size int) {
	h.logger.Debug("cache set", "ns", namespace, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
