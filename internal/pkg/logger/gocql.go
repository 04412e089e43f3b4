package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/gocql/gocql"
)

// SlogQueryObserver gocql 查询观察器，慢查询超过 200ms 记 Warn
type SlogQueryObserver struct{}

func NewQueryObserver() *SlogQueryObserver {
	return &SlogQueryObserver{}
}

func (o *SlogQueryObserver) ObserveQuery(ctx context.Context, q gocql.ObservedQuery) {
	elapsed := q.End.Sub(q.Start)

	fields := []any{
		slog.String("cql", q.Statement),
		slog.Duration("latency", elapsed),
		slog.String("keyspace", q.Keyspace),
	}

	if q.Err != nil && q.Err != gocql.ErrNotFound {
		slog.ErrorContext(ctx, "Cassandra Query Error", append(fields, slog.Any("err", q.Err))...)
	} else if elapsed > 200*time.Millisecond {
		slog.WarnContext(ctx, "Cassandra Query Slow", fields...)
	} else {
		slog.InfoContext(ctx, "Cassandra Query", fields...)
	}
}
