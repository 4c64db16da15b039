package logging

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"
)

// AuditEntry is a single audit record: one CLI command invocation with its
// parameters and outcome. Entries are written as JSON lines.
type AuditEntry struct {
	Timestamp  time.Time         `json:"timestamp"`
	Command    string            `json:"command"`
	TraceID    string            `json:"trace_id"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Outcome    string            `json:"outcome"`
	Error      string            `json:"error,omitempty"`
	RowCount   int               `json:"row_count,omitempty"`
	DurationMS int64             `json:"duration_ms"`
}

// Audit outcomes.
const (
	auditOutcomeSuccess = "success"
	auditOutcomeFailure = "failure"
)

// NewAuditEntry creates an audit entry for the given command and trace ID,
// timestamped now.
func NewAuditEntry(command, traceID string) *AuditEntry {
	return &AuditEntry{
		Timestamp: time.Now().UTC(),
		Command:   command,
		TraceID:   traceID,
	}
}

// WithParameters records the command parameters on the entry.
func (e *AuditEntry) WithParameters(params map[string]string) *AuditEntry {
	e.Parameters = params
	return e
}

// WithError marks the entry as failed with the given message.
func (e *AuditEntry) WithError(msg string) *AuditEntry {
	e.Outcome = auditOutcomeFailure
	e.Error = msg
	return e
}

// WithSuccess marks the entry as successful and records the row count the
// command produced.
func (e *AuditEntry) WithSuccess(rowCount int) *AuditEntry {
	e.Outcome = auditOutcomeSuccess
	e.RowCount = rowCount
	return e
}

// WithDuration records the elapsed time since start in milliseconds.
func (e *AuditEntry) WithDuration(start time.Time) *AuditEntry {
	e.DurationMS = time.Since(start).Milliseconds()
	return e
}

// AuditLogger records audit entries. Implementations must be safe for
// concurrent use.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry)
	Close() error
}

// AuditLoggerConfig controls audit logger construction.
type AuditLoggerConfig struct {
	Enabled bool
	File    string
}

// NewAuditLogger returns a file-backed audit logger when enabled and a file
// path is set, otherwise a no-op logger. Audit logging is best-effort: an
// unopenable file degrades to the no-op logger rather than failing the
// command.
func NewAuditLogger(cfg AuditLoggerConfig) AuditLogger {
	if !cfg.Enabled || cfg.File == "" {
		return noopAuditLogger{}
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return noopAuditLogger{}
	}
	return &fileAuditLogger{file: f}
}

type noopAuditLogger struct{}

func (noopAuditLogger) Log(_ context.Context, _ AuditEntry) {}
func (noopAuditLogger) Close() error                        { return nil }

type fileAuditLogger struct {
	mu   sync.Mutex
	file *os.File
}

// Log appends the entry as a JSON line. Write errors are reported through
// the context logger; the command itself is never failed by audit I/O.
func (l *fileAuditLogger) Log(ctx context.Context, entry AuditEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		FromContext(ctx).Warn().Err(err).Msg("failed to marshal audit entry")
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	if _, err := l.file.Write(append(data, '\n')); err != nil {
		FromContext(ctx).Warn().Err(err).Msg("failed to write audit entry")
	}
}

func (l *fileAuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

type auditLoggerKey struct{}

// ContextWithAuditLogger returns a child context carrying the audit logger.
func ContextWithAuditLogger(ctx context.Context, logger AuditLogger) context.Context {
	return context.WithValue(ctx, auditLoggerKey{}, logger)
}

// AuditLoggerFromContext returns the audit logger stored in ctx. It never
// returns nil; absent a configured logger, the no-op logger is returned.
func AuditLoggerFromContext(ctx context.Context) AuditLogger {
	if l, ok := ctx.Value(auditLoggerKey{}).(AuditLogger); ok && l != nil {
		return l
	}
	return noopAuditLogger{}
}
