package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditEntryBuilders(t *testing.T) {
	start := time.Now().Add(-50 * time.Millisecond)

	entry := NewAuditEntry("team list", "trace-123").
		WithParameters(map[string]string{"search": "bears"}).
		WithSuccess(42).
		WithDuration(start)

	assert.Equal(t, "team list", entry.Command)
	assert.Equal(t, "trace-123", entry.TraceID)
	assert.Equal(t, "bears", entry.Parameters["search"])
	assert.Equal(t, auditOutcomeSuccess, entry.Outcome)
	assert.Equal(t, 42, entry.RowCount)
	assert.GreaterOrEqual(t, entry.DurationMS, int64(50))

	failed := NewAuditEntry("team list", "trace-456").WithError("connection refused")
	assert.Equal(t, auditOutcomeFailure, failed.Outcome)
	assert.Equal(t, "connection refused", failed.Error)
}

func TestNewAuditLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      AuditLoggerConfig
		wantNoop bool
	}{
		{
			name:     "disabled yields noop",
			cfg:      AuditLoggerConfig{Enabled: false, File: "/tmp/audit.log"},
			wantNoop: true,
		},
		{
			name:     "enabled without file yields noop",
			cfg:      AuditLoggerConfig{Enabled: true},
			wantNoop: true,
		},
		{
			name:     "unopenable file degrades to noop",
			cfg:      AuditLoggerConfig{Enabled: true, File: filepath.Join(string(os.PathSeparator), "nonexistent-dir-xyz", "audit.log")},
			wantNoop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewAuditLogger(tt.cfg)
			defer func() { _ = l.Close() }()

			_, isNoop := l.(noopAuditLogger)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestFileAuditLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l := NewAuditLogger(AuditLoggerConfig{Enabled: true, File: path})

	ctx := context.Background()
	l.Log(ctx, *NewAuditEntry("player list", "trace-1").WithSuccess(3))
	l.Log(ctx, *NewAuditEntry("player list", "trace-2").WithError("boom"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first AuditEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "player list", first.Command)
	assert.Equal(t, "trace-1", first.TraceID)
	assert.Equal(t, 3, first.RowCount)

	var second AuditEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "boom", second.Error)
}

func TestFileAuditLogger_LogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	l := NewAuditLogger(AuditLoggerConfig{Enabled: true, File: path})
	require.NoError(t, l.Close())

	// Must not panic or write.
	l.Log(context.Background(), *NewAuditEntry("noop", "t"))
	require.NoError(t, l.Close())
}

func TestAuditLoggerContext(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		l := NewAuditLogger(AuditLoggerConfig{})
		ctx := ContextWithAuditLogger(context.Background(), l)
		assert.Equal(t, l, AuditLoggerFromContext(ctx))
	})

	t.Run("noop when absent", func(t *testing.T) {
		l := AuditLoggerFromContext(context.Background())
		require.NotNil(t, l)
		l.Log(context.Background(), *NewAuditEntry("x", "y"))
		assert.NoError(t, l.Close())
	})
}
