// Package jobs provides the scheduled background tasks of the back office,
// built on github.com/robfig/cron/v3 and coordinated through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"parcels/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingBacklogJob *PendingBacklogJob
}

// NewJobManager creates a job manager with every job wired up.
func NewJobManager(
	countPendingHandler queries.CountPendingParcelsQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingBacklogJob: NewPendingBacklogJob(countPendingHandler, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBacklogJob.Stop()
}
