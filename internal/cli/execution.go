package cli

import (
	"context"
	"time"

	"github.com/breakaway-dev/rinkctl/internal/api"
	"github.com/breakaway-dev/rinkctl/internal/config"
	"github.com/breakaway-dev/rinkctl/internal/logging"
)

// auditContext holds common context for audit logging within a command.
type auditContext struct {
	logger  logging.AuditLogger
	traceID string
	params  map[string]string
	start   time.Time
	command string
}

// newAuditContext creates a new audit context.
func newAuditContext(ctx context.Context, command string, params map[string]string) *auditContext {
	return &auditContext{
		logger:  logging.AuditLoggerFromContext(ctx),
		traceID: logging.TraceIDFromContext(ctx),
		params:  params,
		start:   time.Now(),
		command: command,
	}
}

// logFailure logs an audit entry for a failed operation.
func (a *auditContext) logFailure(ctx context.Context, err error) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithError(err.Error()).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// logSuccess logs an audit entry for a successful operation.
func (a *auditContext) logSuccess(ctx context.Context, count int) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithSuccess(count).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// apiClient builds the backend client from the resolved configuration.
func apiClient(ctx context.Context) *api.Client {
	cfg := config.GetGlobalConfig()

	opts := []api.Option{
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second),
		api.WithLogger(logging.ComponentLogger(*logging.FromContext(ctx), "api")),
	}
	if cfg.API.Token != "" {
		opts = append(opts, api.WithToken(cfg.API.Token))
	}
	return api.New(cfg.API.BaseURL, opts...)
}
