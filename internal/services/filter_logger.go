package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// FilterLogger provides structured logging for filter session events
type FilterLogger struct {
	logger *slog.Logger
}

// NewFilterLogger creates a new filter logger
func NewFilterLogger(logger *slog.Logger) FilterLoggerInterface {
	return &FilterLogger{
		logger: logger,
	}
}

func (fl *FilterLogger) LogSessionCreated(ctx context.Context, sessionID uuid.UUID, landlordID string) {
	fl.logger.InfoContext(ctx, "filter session created",
		slog.String("event_type", "filter_session_created"),
		slog.String("session_id", sessionID.String()),
		slog.String("landlord_id", landlordID),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogFiltersUpdated records which criteria fields an update carried, never their values
func (fl *FilterLogger) LogFiltersUpdated(ctx context.Context, sessionID uuid.UUID, version uint64, fields []string) {
	fl.logger.InfoContext(ctx, "filters updated",
		slog.String("event_type", "filters_updated"),
		slog.String("session_id", sessionID.String()),
		slog.Uint64("version", version),
		slog.Any("fields", fields),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (fl *FilterLogger) LogFiltersReset(ctx context.Context, sessionID uuid.UUID, version uint64) {
	fl.logger.InfoContext(ctx, "filters reset",
		slog.String("event_type", "filters_reset"),
		slog.String("session_id", sessionID.String()),
		slog.Uint64("version", version),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (fl *FilterLogger) LogResultsComputed(ctx context.Context, sessionID uuid.UUID, version uint64, bills, charges int, durationMs int64) {
	fl.logger.DebugContext(ctx, "filter results computed",
		slog.String("event_type", "filter_results_computed"),
		slog.String("session_id", sessionID.String()),
		slog.Uint64("version", version),
		slog.Int("bills_count", bills),
		slog.Int("charges_count", charges),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogStaleResults logs results that arrived after the criteria had moved on.
// applied is false when newer results were already held and these were dropped.
func (fl *FilterLogger) LogStaleResults(ctx context.Context, sessionID uuid.UUID, computedFor, current uint64, applied bool) {
	fl.logger.WarnContext(ctx, "stale filter results",
		slog.String("event_type", "filter_results_stale"),
		slog.Bool("applied", applied),
		slog.String("session_id", sessionID.String()),
		slog.Uint64("computed_for_version", computedFor),
		slog.Uint64("current_version", current),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (fl *FilterLogger) LogComputeFailed(ctx context.Context, sessionID uuid.UUID, version uint64, errorMsg string) {
	fl.logger.ErrorContext(ctx, "filter results computation failed",
		slog.String("event_type", "filter_compute_failed"),
		slog.String("session_id", sessionID.String()),
		slog.Uint64("version", version),
		slog.String("error", errorMsg),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (fl *FilterLogger) LogSessionExpired(ctx context.Context, sessionID uuid.UUID, idle time.Duration) {
	fl.logger.InfoContext(ctx, "filter session expired",
		slog.String("event_type", "filter_session_expired"),
		slog.String("session_id", sessionID.String()),
		slog.Duration("idle", idle),
	)
}

func (fl *FilterLogger) LogSessionDeleted(ctx context.Context, sessionID uuid.UUID) {
	fl.logger.InfoContext(ctx, "filter session deleted",
		slog.String("event_type", "filter_session_deleted"),
		slog.String("session_id", sessionID.String()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogAuthorizationFailure logs an attempt to touch another landlord's resource
func (fl *FilterLogger) LogAuthorizationFailure(ctx context.Context, operation string, landlordID string, resourceID uuid.UUID) {
	fl.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("landlord_id", landlordID),
		slog.String("resource_id", resourceID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}
