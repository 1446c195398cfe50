package jobs

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingBacklogJob periodically reports how many parcels are still waiting
// to leave the warehouse. It is purely observational and never mutates state.
type PendingBacklogJob struct {
	handler  queries.CountPendingParcelsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingBacklogJob creates the backlog report job with a standard cron
// schedule expression (five fields).
func NewPendingBacklogJob(
	handler queries.CountPendingParcelsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the backlog report on its schedule.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		count, err := j.handler.Handle(ctx, queries.NewCountPendingParcelsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending parcel backlog", "count", count)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog report job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}
