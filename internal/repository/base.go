// Package repository provides the read-only data access layer over the content store.
// Lookups return gorm errors unchanged; gorm.ErrRecordNotFound is the not-found signal.
package repository

import (
	"context"
	"errors"

	"polyglot/internal/middleware"
	"polyglot/internal/observability"

	"gorm.io/gorm"
)

// instrument bundles the span, latency and error logging every lookup records.
type instrument struct {
	table   string
	metrics *observability.DatabaseMetrics
	tracer  *observability.TraceLayer
	logger  *observability.RepoLogger
}

func newInstrument(db *gorm.DB, table string) instrument {
	return instrument{
		table:   table,
		metrics: observability.NewDatabaseMetrics(table),
		tracer:  observability.GetTraceLayer().ForSystem(db.Dialector.Name()),
		logger:  observability.NewRepoLogger(table, middleware.Logger),
	}
}

// start opens a span for operation and returns the traced context plus a
// finisher that records latency and ends the span with the call's error.
func (in instrument) start(ctx context.Context, operation string) (context.Context, func(error)) {
	done := in.metrics.TrackQuery(operation)
	ctx, span := in.tracer.TraceRepositoryMethod(ctx, operation, in.table)

	return ctx, func(err error) {
		done()
		if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
			observability.EndSpan(span, nil)
			return
		}
		if err != nil {
			in.logger.LogError(ctx, err, operation)
		}
		observability.EndSpan(span, err)
	}
}
