// Package jobs runs the periodic maintenance tasks of the back office.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// OverdueMarker is satisfied by service.InvoiceService.
type OverdueMarker interface {
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}

// OverdueSweep flags past-due invoices on a cron schedule.
type OverdueSweep struct {
	invoices OverdueMarker
	now      func() time.Time
	timeout  time.Duration
}

func NewOverdueSweep(invoices OverdueMarker) *OverdueSweep {
	return &OverdueSweep{
		invoices: invoices,
		now:      time.Now,
		timeout:  5 * time.Minute,
	}
}

// Run performs one sweep. Failures for some tenants do not stop the others; the count covers
// every invoice that was flagged.
func (j *OverdueSweep) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	started := j.now()
	marked, err := j.invoices.MarkOverdue(ctx, started.UTC())
	if err != nil {
		slog.ErrorContext(ctx, "overdue sweep finished with errors", "marked", marked, "error", err)
		return
	}
	slog.InfoContext(ctx, "overdue sweep finished", "marked", marked, "duration", time.Since(started))
}

// Schedule registers the sweep on a new cron scheduler and starts it. The caller stops the
// returned scheduler on shutdown.
func Schedule(spec string, sweep *OverdueSweep) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(spec, func() { sweep.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule overdue sweep %q: %w", spec, err)
	}

	c.Start()
	slog.Info("overdue sweep scheduled", "spec", spec)
	return c, nil
}
