package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval how often connection pool stats are exported
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor common interface of *sql.DB and *DB used by repositories
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder receives query and pool observations
type Recorder interface {
	ObserveDBQuery(operation string, failed bool, elapsed time.Duration)
	SetDBPoolStats(open, inUse, idle int, waitCount int64)
}

// DB wraps *sql.DB and records latency of every statement
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap wraps db and starts exporting pool stats every interval until stopCh is closed
func Wrap(db *sql.DB, recorder Recorder, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, recorder: recorder}
	go wrapped.collectPoolStats(interval, stopCh)
	return wrapped
}

// WrapWithDefault same as Wrap with DefaultPoolStatsInterval
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	return Wrap(db, recorder, DefaultPoolStatsInterval, stopCh)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(Operation(query), err != nil, time.Since(start))
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(Operation(query), err != nil, time.Since(start))
	return rows, err
}

// QueryRowContext errors surface only on Scan, so the observation is always "ok"
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(Operation(query), false, time.Since(start))
	return row
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)
		}
	}
}

// Operation extracts the statement kind ("select", "insert", ...) used as a metric label
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
