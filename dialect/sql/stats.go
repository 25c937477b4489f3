package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/syssam/persist/dialect"
)

// QueryStats holds statement execution statistics.
type QueryStats struct {
	// TotalQueries is the number of statements run with Query.
	TotalQueries atomic.Int64
	// TotalExecs is the number of statements run with Exec.
	TotalExecs atomic.Int64
	// TotalDuration is the time spent running statements, in nanoseconds.
	TotalDuration atomic.Int64
	// SlowQueries is the number of statements exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the number of failed statements.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *QueryStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalExecs.Store(0)
	s.TotalDuration.Store(0)
	s.SlowQueries.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of statement statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgDuration returns the average statement duration.
func (s StatsSnapshot) AvgDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgDuration(),
		s.SlowQueries, s.Errors,
	)
}

// SlowQueryHook is called for statements exceeding the slow threshold.
type SlowQueryHook func(ctx context.Context, query string, duration time.Duration)

// StatsDriver wraps a dialect.Driver with statement statistics.
type StatsDriver struct {
	dialect.Driver
	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the threshold for slow statement detection.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback for slow statements.
func WithSlowQueryHook(hook SlowQueryHook) StatsOption {
	return func(s *StatsDriver) {
		s.slowHook = hook
	}
}

// WithSlowQueryLog logs slow statements with the given logger.
func WithSlowQueryLog(l *slog.Logger) StatsOption {
	return WithSlowQueryHook(func(ctx context.Context, query string, duration time.Duration) {
		l.WarnContext(ctx, "slow statement detected", "duration", duration, "statement", query)
	})
}

// NewStatsDriver wraps a Driver with statistics collection.
//
//	drv := sql.NewStatsDriver(base,
//	    sql.WithSlowThreshold(200*time.Millisecond),
//	    sql.WithSlowQueryLog(slog.Default()),
//	)
//	fmt.Println(drv.QueryStats().Stats())
func NewStatsDriver(drv dialect.Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		Driver:        drv,
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryStats returns the underlying QueryStats.
func (d *StatsDriver) QueryStats() *QueryStats {
	return d.stats
}

// Query runs a query and records statistics.
func (d *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.record(ctx, query, start, err, &d.stats.TotalQueries)
	return err
}

// Exec runs a statement and records statistics.
func (d *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.record(ctx, query, start, err, &d.stats.TotalExecs)
	return err
}

func (d *StatsDriver) record(ctx context.Context, query string, start time.Time, err error, counter *atomic.Int64) {
	duration := time.Since(start)
	counter.Add(1)
	d.stats.TotalDuration.Add(int64(duration))
	if err != nil {
		d.stats.Errors.Add(1)
	}
	if duration > d.slowThreshold {
		d.stats.SlowQueries.Add(1)
		if d.slowHook != nil {
			d.slowHook(ctx, query, duration)
		}
	}
}

// Tx starts a transaction that also records statistics.
func (d *StatsDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsTx{Tx: tx, driver: d}, nil
}

// StatsTx wraps a transaction with statistics collection.
type StatsTx struct {
	dialect.Tx
	driver *StatsDriver
}

// Query runs a query within the transaction and records statistics.
func (tx *StatsTx) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Query(ctx, query, args, v)
	tx.driver.record(ctx, query, start, err, &tx.driver.stats.TotalQueries)
	return err
}

// Exec runs a statement within the transaction and records statistics.
func (tx *StatsTx) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Exec(ctx, query, args, v)
	tx.driver.record(ctx, query, start, err, &tx.driver.stats.TotalExecs)
	return err
}

// DebugDriver wraps a dialect.Driver and logs every statement.
type DebugDriver struct {
	dialect.Driver
	log *slog.Logger
}

// Debug wraps the driver with statement logging at debug level. A nil
// logger means slog.Default().
func Debug(drv dialect.Driver, l *slog.Logger) *DebugDriver {
	if l == nil {
		l = slog.Default()
	}
	return &DebugDriver{Driver: drv, log: l}
}

// Query logs and runs a query.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	d.log.DebugContext(ctx, "query", "statement", query, "args", args)
	return d.Driver.Query(ctx, query, args, v)
}

// Exec logs and runs a statement.
func (d *DebugDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.log.DebugContext(ctx, "exec", "statement", query, "args", args)
	return d.Driver.Exec(ctx, query, args, v)
}

// Tx starts a transaction with statement logging.
func (d *DebugDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	d.log.DebugContext(ctx, "begin transaction")
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &DebugTx{Tx: tx, log: d.log}, nil
}

// DebugTx wraps a transaction with statement logging.
type DebugTx struct {
	dialect.Tx
	log *slog.Logger
}

// Query logs and runs a query within the transaction.
func (tx *DebugTx) Query(ctx context.Context, query string, args, v any) error {
	tx.log.DebugContext(ctx, "tx query", "statement", query, "args", args)
	return tx.Tx.Query(ctx, query, args, v)
}

// Exec logs and runs a statement within the transaction.
func (tx *DebugTx) Exec(ctx context.Context, query string, args, v any) error {
	tx.log.DebugContext(ctx, "tx exec", "statement", query, "args", args)
	return tx.Tx.Exec(ctx, query, args, v)
}

// Commit commits the transaction and logs it.
func (tx *DebugTx) Commit() error {
	tx.log.Debug("commit transaction")
	return tx.Tx.Commit()
}

// Rollback rolls back the transaction and logs it.
func (tx *DebugTx) Rollback() error {
	tx.log.Debug("rollback transaction")
	return tx.Tx.Rollback()
}

var (
	_ dialect.Driver = (*StatsDriver)(nil)
	_ dialect.Tx     = (*StatsTx)(nil)
	_ dialect.Driver = (*DebugDriver)(nil)
	_ dialect.Tx     = (*DebugTx)(nil)
)
