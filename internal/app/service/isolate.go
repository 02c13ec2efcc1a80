package service

import (
	"context"
	"errors"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/metrics"
)

// isolate runs one per-item enrichment call. A failure is logged and replaced
// by fallback so it never reaches sibling calls or the caller. The boolean
// reports whether fn succeeded.
func isolate[T any](
	ctx context.Context,
	logger port.Logger,
	operation string,
	fallback T,
	fn func(context.Context) (T, error),
	logArgs ...any,
) (T, bool) {
	value, err := fn(ctx)
	if err == nil {
		return value, true
	}

	args := append([]any{"operation", operation, "error", err}, logArgs...)
	if errors.Is(err, entity.ErrUnsupportedOperation) {
		logger.Debug("Enrichment not available for this provider, using fallback", args...)
		return fallback, false
	}

	metrics.EnrichmentFailures.WithLabelValues(operation).Inc()
	logger.Warn("Enrichment call failed, using fallback", args...)
	return fallback, false
}
